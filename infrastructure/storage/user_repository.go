package storage

import (
	"fmt"
	"time"

	"grouplink/errors"
	pb "grouplink/proto/account"
	"grouplink/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID retrieves a user record from Badger. Records are written by the
// account service; this side only ever reads them.
func (u UserRepository) GetUserByID(id string) (repositories.User, error) {
	var userPb pb.User

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		})
	})

	if err == badger.ErrKeyNotFound {
		return repositories.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	if err != nil {
		return repositories.User{}, err
	}

	return toUserStruct(&userPb), nil
}

// CreateUser persists a user record. Kept for seeding and operational
// tooling parity with the account service; the connection core never calls it.
func (u UserRepository) CreateUser(email, phone string) (string, error) {
	newID := uuid.New().String()
	userPb := &pb.User{
		Id:        newID,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().Unix(),
		Roles:     []string{"operator"},
	}

	data, err := proto.Marshal(userPb)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(newID), data)
	})

	return newID, err
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

func toUserStruct(pbUser *pb.User) repositories.User {
	return repositories.User{
		ID:        pbUser.Id,
		Email:     pbUser.Email,
		Phone:     pbUser.Phone,
		Roles:     pbUser.Roles,
		CreatedAt: time.Unix(pbUser.CreatedAt, 0).UTC(),
	}
}
