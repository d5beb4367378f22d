package service

import "errors"

var (
	ErrEmptyName           = errors.New("name is required")
	ErrBadCategory         = errors.New("category must be A or B")
	ErrImageUpload         = errors.New("image upload failed")
	ErrReorderCommit       = errors.New("reorder was not saved")
	ErrIncompleteSelection = errors.New("exactly two gifts must be selected")
	ErrIllegalSelection    = errors.New("selection breaks the gift rules")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmptyPassword       = errors.New("password must not be empty")
)

// Mutation — сигнал после изменяющей операции: Invalidate=true значит,
// что клиент должен перечитать данные, а не доверять своему локальному состоянию.
type Mutation struct {
	Invalidate bool `json:"invalidate"`
}

var reload = Mutation{Invalidate: true}
