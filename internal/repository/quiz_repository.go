package repository

import (
	"database/sql"
	"encoding/json"

	"technews/internal/model"
)

type QuizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) SaveQuiz(quiz *model.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO quiz(id, article_id, title, questions)
		VALUES($1, $2, $3, $4)
		RETURNING created_at
	`, quiz.ID, quiz.ArticleID, quiz.Title, questions).Scan(&quiz.CreatedAt)
}

func (r *QuizRepository) GetQuizByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	var questionsJSON []byte

	err := r.db.QueryRow(`
		SELECT id, article_id, title, questions, created_at
		FROM quiz
		WHERE id = $1
	`, id).Scan(&quiz.ID, &quiz.ArticleID, &quiz.Title, &questionsJSON, &quiz.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questionsJSON, &quiz.Questions); err != nil {
		return nil, err
	}

	return &quiz, nil
}

// GetQuizByArticleID returns the quiz tied to a staged or published article,
// or nil when none exists.
func (r *QuizRepository) GetQuizByArticleID(articleID string) (*model.Quiz, error) {
	var quiz model.Quiz
	var questionsJSON []byte

	err := r.db.QueryRow(`
		SELECT id, article_id, title, questions, created_at
		FROM quiz
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, articleID).Scan(&quiz.ID, &quiz.ArticleID, &quiz.Title, &questionsJSON, &quiz.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questionsJSON, &quiz.Questions); err != nil {
		return nil, err
	}

	return &quiz, nil
}

// UpdateQuiz replaces a quiz's title and questions, keeping its article
// link and creation time. Returns false when the id does not exist.
func (r *QuizRepository) UpdateQuiz(quiz *model.Quiz) (bool, error) {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return false, err
	}

	err = r.db.QueryRow(`
		UPDATE quiz
		SET title = $2, questions = $3
		WHERE id = $1
		RETURNING article_id, created_at
	`, quiz.ID, quiz.Title, questions).Scan(&quiz.ArticleID, &quiz.CreatedAt)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// DeleteQuiz removes a quiz and its results. Returns false when the id does
// not exist.
func (r *QuizRepository) DeleteQuiz(id string) (bool, error) {
	if _, err := r.db.Exec(`DELETE FROM quiz_result WHERE quiz_id = $1`, id); err != nil {
		return false, err
	}

	result, err := r.db.Exec(`DELETE FROM quiz WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *QuizRepository) GetQuizzes(limit, offset int) ([]model.Quiz, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, title, questions, created_at
		FROM quiz
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var quiz model.Quiz
		var questionsJSON []byte
		err := rows.Scan(&quiz.ID, &quiz.ArticleID, &quiz.Title, &questionsJSON, &quiz.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionsJSON, &quiz.Questions); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quizzes, nil
}

func (r *QuizRepository) GetQuizTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM quiz`).Scan(&total)
	return total, err
}

func (r *QuizRepository) SaveResult(result *model.QuizResult) error {
	questions, err := json.Marshal(result.Questions)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO quiz_result(id, quiz_id, user_id, questions, score)
		VALUES($1, $2, $3, $4, $5)
		RETURNING created_at
	`, result.ID, result.QuizID, result.UserID, questions, result.Score).Scan(&result.CreatedAt)
}

func (r *QuizRepository) GetResults(userID string, limit, offset int) ([]model.QuizResult, error) {
	rows, err := r.db.Query(`
		SELECT id, quiz_id, user_id, questions, score, created_at
		FROM quiz_result
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.QuizResult
	for rows.Next() {
		var result model.QuizResult
		var questionsJSON []byte
		err := rows.Scan(&result.ID, &result.QuizID, &result.UserID, &questionsJSON, &result.Score, &result.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionsJSON, &result.Questions); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
