package entity

// ThumbnailJob is the unit of work handed to the thumbnail queue.
// Delivery is at-least-once; consumers must tolerate replays.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}
