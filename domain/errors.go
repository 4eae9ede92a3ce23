package domain

import "errors"

var (
	// 記事関連エラー
	ErrArticleNotFound = errors.New("article not found")

	// 読書セッション関連エラー
	ErrReadSessionNotFound = errors.New("read session not found")

	// アプリセッション関連エラー
	ErrUserSessionNotFound = errors.New("user session not found")
)
