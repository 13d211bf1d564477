package api

// Role is the access level assigned to a newly created account.
// The wire values follow the service's convention.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// Credentials is the login pair. It exists only for the duration of a login
// submission and is never persisted.
type Credentials struct {
	UserName string `json:"userName"`
	PassWord string `json:"passWord"`
}

// NewUserRequest is the payload of an account-creation submission.
type NewUserRequest struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	PassWord  string `json:"passWord"`
	Roles     Role   `json:"roles"`
}

// UserRecord is one directory entry as the service reports it.
// The client only ever reads these.
type UserRecord struct {
	ID        int    `json:"id"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Roles     string `json:"roles"`
}

// Page is one slice of the server-paginated user collection. Number is the
// zero-based page index. An empty Content with a 2xx status is a valid
// "no matches" result, not an error.
type Page struct {
	Content    []UserRecord `json:"content"`
	TotalPages int          `json:"totalPages"`
	Number     int          `json:"number"`
}

// SearchField is the single attribute a search is scoped to.
type SearchField string

const (
	FieldFirstName SearchField = "firstName"
	FieldLastName  SearchField = "lastName"
	FieldUserName  SearchField = "userName"
	FieldEmail     SearchField = "email"
)

// Valid reports whether f is one of the searchable attributes.
func (f SearchField) Valid() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldUserName, FieldEmail:
		return true
	}
	return false
}

// SearchQuery is a filter over a single field.
type SearchQuery struct {
	Field SearchField
	Value string
}

// Confirmation echoes the service's response to an account-creation call.
type Confirmation struct {
	Status string `json:"status"`
	UserID *int   `json:"userId"`
}
