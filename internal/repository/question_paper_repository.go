package repository

import (
	"context"
	"sort"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// QuestionPaperRepository reads and writes archived question papers.
type QuestionPaperRepository struct {
	papers *store.Collection[models.QuestionPaper]
}

// NewQuestionPaperRepository constructs QuestionPaperRepository.
func NewQuestionPaperRepository(s *store.Store) *QuestionPaperRepository {
	return &QuestionPaperRepository{papers: s.QuestionPapers}
}

// Create appends a question paper.
func (r *QuestionPaperRepository) Create(ctx context.Context, paper models.QuestionPaper) error {
	r.papers.Append(paper)
	return nil
}

// ListAll returns papers, most recent year first.
func (r *QuestionPaperRepository) ListAll(ctx context.Context) ([]models.QuestionPaper, error) {
	papers := r.papers.All()
	sort.SliceStable(papers, func(i, j int) bool { return papers[i].Year > papers[j].Year })
	return papers, nil
}

// Delete removes the paper with id.
func (r *QuestionPaperRepository) Delete(ctx context.Context, id string) error {
	if !r.papers.Delete(func(p models.QuestionPaper) bool { return p.ID == id }) {
		return ErrNoRecord
	}
	return nil
}
