package models

import "time"

// ForumPost starts a discussion thread within a course.
type ForumPost struct {
	ID        string       `json:"id"`
	UserEmail string       `json:"user_email"`
	CourseID  string       `json:"course_id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Replies   []ForumReply `json:"replies"`
	CreatedAt time.Time    `json:"created_at"`
}

// ForumReply is appended to an existing post.
type ForumReply struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
