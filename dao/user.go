package dao

import (
	"time"

	"github.com/akinwale/sms-blast/model"
)

type UserDao interface {
	//Create creates a user record and returns its id
	Create(email string, passwordHash []byte) (uint32, error)
	//GetOneByEmail returns the user with the given email
	GetOneByEmail(email string) (model.User, error)
}

func NewUserDao(db Db) UserDao {
	return &userDao{db: db}
}

type userDao struct {
	db Db
}

func (d userDao) Create(email string, passwordHash []byte) (uint32, error) {
	user := &model.User{Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	err := d.db.Save(user)
	return user.Id, err
}

func (d userDao) GetOneByEmail(email string) (user model.User, err error) {
	err = d.db.One("Email", email, &user)
	return
}
