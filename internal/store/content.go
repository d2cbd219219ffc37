package store

import (
	"context"
	"errors"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EducationCardStore struct {
	db *pgxpool.Pool
}

func NewEducationCardStore(db *pgxpool.Pool) *EducationCardStore {
	return &EducationCardStore{db: db}
}

func (s *EducationCardStore) Create(ctx context.Context, card *domain.EducationCard) error {
	if card.Sections == nil {
		card.Sections = map[string]any{}
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	return s.db.QueryRow(ctx,
		`INSERT INTO education_cards (row_index, col_index, title, text, sections, tags, image_svg)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		 RETURNING id, created_at`,
		card.Row, card.Col, card.Title, card.Text, card.Sections, card.Tags, card.ImageSVG,
	).Scan(&card.ID, &card.CreatedAt)
}

func (s *EducationCardStore) List(ctx context.Context) ([]domain.EducationCard, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, row_index, col_index, title, text, sections, tags, COALESCE(image_svg, ''), created_at
		 FROM education_cards
		 ORDER BY row_index, col_index, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.EducationCard
	for rows.Next() {
		var c domain.EducationCard
		if err := rows.Scan(&c.ID, &c.Row, &c.Col, &c.Title, &c.Text, &c.Sections, &c.Tags, &c.ImageSVG, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

type FunFactStore struct {
	db *pgxpool.Pool
}

func NewFunFactStore(db *pgxpool.Pool) *FunFactStore {
	return &FunFactStore{db: db}
}

func (s *FunFactStore) Create(ctx context.Context, f *domain.FunFact) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO fun_facts (fun_fact) VALUES ($1) RETURNING id`,
		f.FunFact,
	).Scan(&f.ID)
}

func (s *FunFactStore) Random(ctx context.Context) (*domain.FunFact, error) {
	f := &domain.FunFact{}
	err := s.db.QueryRow(ctx,
		`SELECT id, fun_fact FROM fun_facts ORDER BY random() LIMIT 1`,
	).Scan(&f.ID, &f.FunFact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *FunFactStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM fun_facts`).Scan(&count)
	return count, err
}

// ChromosomeInfoStore keeps a single row of chromosome reference text.
type ChromosomeInfoStore struct {
	db *pgxpool.Pool
}

func NewChromosomeInfoStore(db *pgxpool.Pool) *ChromosomeInfoStore {
	return &ChromosomeInfoStore{db: db}
}

func (s *ChromosomeInfoStore) Get(ctx context.Context) (*domain.ChromosomeInfo, error) {
	info := &domain.ChromosomeInfo{}
	err := s.db.QueryRow(ctx,
		`SELECT id, chromosome_info, updated_at FROM chromosome_info ORDER BY id LIMIT 1`,
	).Scan(&info.ID, &info.ChromosomeInfo, &info.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

func (s *ChromosomeInfoStore) Upsert(ctx context.Context, info *domain.ChromosomeInfo) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO chromosome_info (id, chromosome_info, updated_at)
		 VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET chromosome_info = EXCLUDED.chromosome_info, updated_at = NOW()
		 RETURNING id, updated_at`,
		info.ChromosomeInfo,
	).Scan(&info.ID, &info.UpdatedAt)
}
