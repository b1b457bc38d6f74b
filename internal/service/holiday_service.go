package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
)

// indianHolidays is the static 2024 calendar served by the holiday lookup.
var indianHolidays = []models.Holiday{
	{Date: "2024-01-26", Name: "Republic Day"},
	{Date: "2024-03-08", Name: "Maha Shivaratri"},
	{Date: "2024-03-25", Name: "Holi"},
	{Date: "2024-04-09", Name: "Gudi Padwa"},
	{Date: "2024-04-11", Name: "Ram Navami"},
	{Date: "2024-04-17", Name: "Mahavir Jayanti"},
	{Date: "2024-05-01", Name: "May Day"},
	{Date: "2024-05-23", Name: "Buddha Purnima"},
	{Date: "2024-08-15", Name: "Independence Day"},
	{Date: "2024-08-19", Name: "Raksha Bandhan"},
	{Date: "2024-09-02", Name: "Ganesh Chaturthi"},
	{Date: "2024-10-02", Name: "Gandhi Jayanti"},
	{Date: "2024-10-12", Name: "Dussehra"},
	{Date: "2024-10-31", Name: "Diwali"},
	{Date: "2024-11-15", Name: "Guru Nanak Jayanti"},
	{Date: "2024-12-25", Name: "Christmas Day"},
}

// HolidayService serves the static holiday calendar.
type HolidayService struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewHolidayService constructs HolidayService.
func NewHolidayService(logger *zap.Logger) *HolidayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns the holidays falling in year. An empty year means the
// current one.
func (s *HolidayService) List(ctx context.Context, year string) []models.Holiday {
	if year == "" {
		year = s.now().Format("2006")
	}
	holidays := make([]models.Holiday, 0, len(indianHolidays))
	for _, holiday := range indianHolidays {
		if strings.HasPrefix(holiday.Date, year) {
			holidays = append(holidays, holiday)
		}
	}
	return holidays
}
