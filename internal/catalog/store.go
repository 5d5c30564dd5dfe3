package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pattern-mastery/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const patternColumns = `id, name, difficulty, category, meaning, key_rules,
	needs_confirmation, scenarios, action_protocol, real_world_context,
	confusions, quick_test, candle_glyph, created_at`

func scanPattern(row interface{ Scan(...interface{}) error }) (models.Pattern, error) {
	var p models.Pattern
	var keyRules, scenarios []byte
	var confusions, quickTest sql.NullString
	var glyph sql.NullString

	err := row.Scan(&p.ID, &p.Name, &p.Difficulty, &p.Category, &p.Meaning,
		&keyRules, &p.NeedsConfirmation, &scenarios, &p.ActionProtocol,
		&p.RealWorldContext, &confusions, &quickTest, &glyph, &p.CreatedAt)
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(keyRules, &p.KeyRules); err != nil {
		return p, fmt.Errorf("decode key_rules: %w", err)
	}
	if err := json.Unmarshal(scenarios, &p.Scenarios); err != nil {
		return p, fmt.Errorf("decode scenarios: %w", err)
	}
	if confusions.Valid {
		if err := json.Unmarshal([]byte(confusions.String), &p.Confusions); err != nil {
			return p, fmt.Errorf("decode confusions: %w", err)
		}
	}
	if quickTest.Valid {
		var qt models.QuickTest
		if err := json.Unmarshal([]byte(quickTest.String), &qt); err != nil {
			return p, fmt.Errorf("decode quick_test: %w", err)
		}
		p.QuickTest = &qt
	}
	if glyph.Valid {
		p.CandleGlyph = glyph.String
	}

	return p, nil
}

func (s *Store) List(req models.PatternListRequest) ([]models.Pattern, error) {
	query := fmt.Sprintf(`SELECT %s FROM patterns`, patternColumns)
	var conditions []string
	var args []interface{}

	if req.Difficulty != nil {
		args = append(args, *req.Difficulty)
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if req.Category != nil {
		args = append(args, *req.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if req.Search != nil {
		args = append(args, "%"+*req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR meaning ILIKE $%d)", len(args), len(args)))
	}

	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}

	args = append(args, req.Limit)
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d", len(args))
	args = append(args, req.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	defer rows.Close()

	var patterns []models.Pattern
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

func (s *Store) Get(patternID string) (*models.Pattern, error) {
	row := s.db.QueryRow(
		fmt.Sprintf(`SELECT %s FROM patterns WHERE id = $1`, patternColumns),
		patternID,
	)
	p, err := scanPattern(row)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get pattern: %w", err)
	}
	return &p, nil
}

func (s *Store) Exists(patternID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM patterns WHERE id = $1)`,
		patternID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pattern exists: %w", err)
	}
	return exists, nil
}

func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM patterns`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count patterns: %w", err)
	}
	return count, nil
}

func (s *Store) Insert(p models.Pattern) error {
	keyRules, err := json.Marshal(p.KeyRules)
	if err != nil {
		return fmt.Errorf("encode key_rules: %w", err)
	}
	scenarios, err := json.Marshal(p.Scenarios)
	if err != nil {
		return fmt.Errorf("encode scenarios: %w", err)
	}

	var confusions, quickTest interface{}
	if p.Confusions != nil {
		b, err := json.Marshal(p.Confusions)
		if err != nil {
			return fmt.Errorf("encode confusions: %w", err)
		}
		confusions = b
	}
	if p.QuickTest != nil {
		b, err := json.Marshal(p.QuickTest)
		if err != nil {
			return fmt.Errorf("encode quick_test: %w", err)
		}
		quickTest = b
	}

	_, err = s.db.Exec(
		`INSERT INTO patterns
		 (id, name, difficulty, category, meaning, key_rules, needs_confirmation,
		  scenarios, action_protocol, real_world_context, confusions, quick_test, candle_glyph)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name, p.Difficulty, p.Category, p.Meaning, keyRules,
		p.NeedsConfirmation, scenarios, p.ActionProtocol, p.RealWorldContext,
		confusions, quickTest, nullString(p.CandleGlyph),
	)
	if err != nil {
		return fmt.Errorf("insert pattern: %w", err)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
