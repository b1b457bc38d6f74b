package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus API",
        "description": "Campus management backend with in-memory storage and realtime notifications",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Registration and login"},
        {"name": "Courses", "description": "Course catalog and rosters"},
        {"name": "Enrollments", "description": "Student course enrollment"},
        {"name": "Attendance", "description": "Daily attendance marks"},
        {"name": "Grades", "description": "Grades and performance reports"},
        {"name": "Assignments", "description": "Assignments and submissions"},
        {"name": "Forum", "description": "Course discussion forum"},
        {"name": "Leave", "description": "Leave requests"},
        {"name": "Complaints", "description": "Student complaints"},
        {"name": "Notifications", "description": "Per-user notification feed"},
        {"name": "Leaderboard", "description": "Credits and monthly rankings"},
        {"name": "Chat", "description": "Parent-teacher messaging"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ws": {
            "get": {
                "summary": "Realtime websocket. Pass email as query parameter to join your notification room.",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/api/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register an account",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate by email and password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/profile/{email}": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Fetch a user profile",
                "parameters": [{"name": "email", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/courses": {
            "post": {
                "tags": ["Courses"],
                "summary": "Create a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/courses/{department}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses of a department",
                "parameters": [{"name": "department", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/all-courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List every course",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/course-students/{courseId}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List students enrolled in a course",
                "parameters": [{"name": "courseId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/enroll": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll a student in a course",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Already enrolled"}
                }
            }
        },
        "/api/enrolled-courses/{studentEmail}": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List courses a student is enrolled in",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/attendance": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Record attendance for a date",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/attendance/{studentEmail}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records of a student",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/grades": {
            "post": {
                "tags": ["Grades"],
                "summary": "Upload or overwrite a grade",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/grades/{studentEmail}": {
            "get": {
                "tags": ["Grades"],
                "summary": "List grades of a student",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/performance/{studentEmail}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Per-course attendance and grade report",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/overall-grades/{studentEmail}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Per-course grade letters and averaged points",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/assignments": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Create an assignment",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/assignments/{department}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments of a department",
                "parameters": [{"name": "department", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/submit-assignment": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Submit an assignment",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/assignment-submissions/{assignmentId}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List submissions for an assignment",
                "parameters": [{"name": "assignmentId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/forum-posts": {
            "post": {
                "tags": ["Forum"],
                "summary": "Create a forum post",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/forum-replies": {
            "post": {
                "tags": ["Forum"],
                "summary": "Reply to a forum post",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/forum-posts/{courseId}": {
            "get": {
                "tags": ["Forum"],
                "summary": "List forum posts of a course",
                "parameters": [{"name": "courseId", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/leave": {
            "post": {
                "tags": ["Leave"],
                "summary": "Submit a leave request",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/leave-requests/{department}": {
            "get": {
                "tags": ["Leave"],
                "summary": "List pending leave requests of a department",
                "parameters": [{"name": "department", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/leave-status": {
            "post": {
                "tags": ["Leave"],
                "summary": "Approve or reject a leave request",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/complaint": {
            "post": {
                "tags": ["Complaints"],
                "summary": "File a complaint",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/complaints/{department}": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List complaints of a department",
                "parameters": [{"name": "department", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/complaint-status": {
            "post": {
                "tags": ["Complaints"],
                "summary": "Update a complaint status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/notifications/{userEmail}": {
            "get": {
                "tags": ["Notifications"],
                "summary": "List notifications for a user",
                "parameters": [{"name": "userEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/notifications/mark-read": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Mark a notification as read",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/leaderboard": {
            "post": {
                "tags": ["Leaderboard"],
                "summary": "Publish a monthly leaderboard",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Period already published"}
                }
            }
        },
        "/api/leaderboard/{month}/{year}": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Fetch the leaderboard of a period",
                "parameters": [
                    {"name": "month", "in": "path", "type": "string", "required": true},
                    {"name": "year", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/leaderboards": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "List published leaderboards",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/top-students": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Live top students by total credits",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/student-credits/{studentEmail}": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Fetch the credit ledger of a student",
                "parameters": [{"name": "studentEmail", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/chat-messages": {
            "post": {
                "tags": ["Chat"],
                "summary": "Send a parent-teacher chat message",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/chat-messages/{parentEmail}/{teacherEmail}": {
            "get": {
                "tags": ["Chat"],
                "summary": "Fetch a parent-teacher conversation",
                "parameters": [
                    {"name": "parentEmail", "in": "path", "type": "string", "required": true},
                    {"name": "teacherEmail", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
