package repository

import (
	"database/sql"
	"encoding/json"

	"technews/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SavePublished inserts a promoted article. Returns false when an article
// with the same title already exists for the day (duplicate promotion).
func (r *ArticleRepository) SavePublished(article *model.PublishedArticle) (bool, error) {
	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return false, err
	}

	var id int64
	err = r.db.QueryRow(`
		INSERT INTO published_article(title, abstract, content, tags, image_url)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (title) DO NOTHING
		RETURNING id
	`, article.Title, article.Abstract, article.Content, tags, article.ImageURL).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

func (r *ArticleRepository) GetPublished(limit, offset int) ([]model.PublishedArticle, error) {
	rows, err := r.db.Query(`
		SELECT id, title, abstract, content, tags, image_url, created_at
		FROM published_article
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.PublishedArticle
	for rows.Next() {
		var a model.PublishedArticle
		var tagsJSON []byte
		err := rows.Scan(&a.ID, &a.Title, &a.Abstract, &a.Content, &tagsJSON, &a.ImageURL, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tagsJSON, &a.Tags); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetPublishedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM published_article`).Scan(&total)
	return total, err
}
