//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import "time"

// IUserRepository is the read surface the connection core consumes from the
// account collaborator. The core never writes user records; it only reads
// the registered phone to gate admin verification.
type IUserRepository interface {
	GetUserByID(id string) (User, error)
}

// User is the domain-friendly representation of a platform user in the
// repository layer.
type User struct {
	ID        string
	Email     string
	Phone     string
	Roles     []string
	CreatedAt time.Time
}
