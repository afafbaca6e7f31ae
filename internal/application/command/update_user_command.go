package command

// ReplaceUserCommand backs PUT: every field is required and overwrites.
type ReplaceUserCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PatchUserCommand backs PATCH: nil pointers mean "leave untouched".
type PatchUserCommand struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
