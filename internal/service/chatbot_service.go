package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// chatbotKeywords fixes the match order; the first keyword found in the
// query wins.
var chatbotKeywords = []string{
	"book", "assignment", "attendance", "result", "course", "library",
	"fee", "exam", "leave", "complaint", "forum", "enroll", "timetable",
	"event", "live", "question", "holiday", "leaderboard", "credit",
	"concept", "recommendation",
}

var chatbotReplies = map[string]string{
	"book":           "You can find books in the library section. For specific book searches, please provide the book title or author name.",
	"assignment":     "Assignments are available in your dashboard. Submit them before the due date to avoid penalties.",
	"attendance":     "Your attendance is calculated based on the classes you attend. Minimum 75% attendance is required.",
	"result":         "Results are published at the end of each semester. Check your grade report for detailed performance.",
	"course":         "Courses are assigned based on your department and semester. Contact your department head for course changes.",
	"library":        "The library is open from 9 AM to 6 PM. You can borrow up to 3 books for 15 days.",
	"fee":            "Fee payment deadlines are mentioned in the academic calendar. Late payments may incur penalties.",
	"exam":           "Exam schedules are published in the academic calendar. Hall tickets will be available one week before exams.",
	"leave":          "You can request leave through the Leave section. Approved leaves will not affect your attendance.",
	"complaint":      "You can raise complaints through the Complaints section. They will be reviewed by the administration.",
	"forum":          "You can participate in course discussions through the Forum section. Share your questions and knowledge with others.",
	"enroll":         "You can enroll in available courses through the Courses section. Browse and join courses relevant to your department.",
	"timetable":      "You can view your class timetable in the Timetable section. It shows your daily/weekly schedule.",
	"event":          "You can view and participate in college events through the Events section. Check for upcoming fests and technical events.",
	"live":           "You can join live sessions through the Live Sessions section. Check the schedule and join using the provided links.",
	"question":       "You can download question papers from the Question Papers section. They are organized by course and year.",
	"holiday":        "You can check the holiday calendar to see upcoming holidays and breaks.",
	"leaderboard":    "The leaderboard shows top performing students each month. Earn credits by performing well in assignments and exams.",
	"credit":         "Credits are earned through academic performance and leaderboard rankings. They contribute to your overall academic standing.",
	"concept":        "Concept maps help visualize relationships between different topics in your courses. Check the Concept Map section.",
	"recommendation": "Course recommendations are based on your performance and interests. They help you choose relevant courses.",
}

const chatbotFallback = "I'm here to help you with academic queries. Please ask about books, assignments, attendance, results, courses, library, fees, exams, leave, complaints, forum, enrollment, timetable, events, live sessions, question papers, holidays, leaderboard, credits, concept maps, or course recommendations."

// ChatbotService answers student queries from a keyword table. Subject
// overrides win over the generic table.
type ChatbotService struct {
	logger *zap.Logger
}

// NewChatbotService constructs ChatbotService.
func NewChatbotService(logger *zap.Logger) *ChatbotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatbotService{logger: logger}
}

// Reply returns the canned answer matching the query.
func (s *ChatbotService) Reply(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	reply := chatbotFallback
	for _, keyword := range chatbotKeywords {
		if strings.Contains(lower, keyword) {
			reply = chatbotReplies[keyword]
			break
		}
	}

	switch {
	case strings.Contains(lower, "python") || strings.Contains(lower, "programming"):
		reply = "Python is a great programming language for beginners. It has simple syntax and is widely used in data science, web development, and automation. Would you like specific help with Python concepts?"
	case strings.Contains(lower, "math") || strings.Contains(lower, "calculus"):
		reply = "Mathematics requires practice and understanding of fundamental concepts. I can help explain mathematical concepts or direct you to relevant resources. What specific topic are you struggling with?"
	case strings.Contains(lower, "deadline") || strings.Contains(lower, "due date"):
		reply = "Check the Assignments section for all due dates. It's important to submit assignments before deadlines to avoid penalties. Would you like me to help you find a specific assignment deadline?"
	}
	return reply
}
