package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "required field(s) missing: Title, Genre",
		(&ValidationError{Fields: []string{"Title", "Genre"}}).Error())

	assert.Equal(t, `no book found with title "Dune"`,
		(&NotFoundError{Title: "Dune"}).Error())

	cause := errors.New("disk full")
	assert.Equal(t, "could not save library after add: disk full",
		(&PersistenceError{Op: "add", Err: cause}).Error())
	assert.Equal(t, "could not save library: disk full",
		(&PersistenceError{Err: cause}).Error())
	assert.ErrorIs(t, &PersistenceError{Op: "add", Err: cause}, cause)
}
