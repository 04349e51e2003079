package entity

import (
	"time"
)

const (
	FileTypeFolder = "folder"
	FileTypeFile   = "file"
	FileTypeImage  = "image"
)

// RootParentID is the reserved parentId value meaning "top level".
const RootParentID = "0"

type File struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Type      string    `json:"type" firestore:"type"`
	ParentID  string    `json:"parentId" firestore:"parentId"`
	IsPublic  bool      `json:"isPublic" firestore:"isPublic"`
	LocalPath string    `json:"-" firestore:"localPath"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at,omitempty" firestore:"updatedAt"`
}

func (f *File) IsFolder() bool {
	return f.Type == FileTypeFolder
}

func ValidFileType(t string) bool {
	return t == FileTypeFolder || t == FileTypeFile || t == FileTypeImage
}
