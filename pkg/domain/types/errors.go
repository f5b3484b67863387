package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrValidationFailed  = goerr.New("validation failed")
)
