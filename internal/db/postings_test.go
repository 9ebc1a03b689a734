package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExistingURLs_EmptyInputSkipsStorage(t *testing.T) {
	// The pool is nil here: any query would panic, so passing means the
	// empty-input path returned before contacting storage.
	database := &DB{log: zap.NewNop()}

	result := database.ExistingURLs(context.Background(), nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)

	result = database.ExistingURLs(context.Background(), []string{})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
