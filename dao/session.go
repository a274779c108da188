package dao

import (
	"time"

	"github.com/akinwale/sms-blast/model"
	"github.com/asdine/storm/v3/q"
)

type SessionDao interface {
	//Create persists a session token for the owner
	Create(ownerId uint32, token string) error
	//GetOneByToken returns the session with the given token
	GetOneByToken(token string) (model.Session, error)
	//DeleteByToken removes the session with the given token
	DeleteByToken(token string) error
	//RemoveOlderThanHours removes all sessions older than {hours}
	RemoveOlderThanHours(hours int) error
}

func NewSessionDao(db Db) SessionDao {
	return &sessionDao{db: db}
}

type sessionDao struct {
	db Db
}

func (d sessionDao) Create(ownerId uint32, token string) error {
	return d.db.Save(&model.Session{OwnerId: ownerId, Token: token, CreatedAt: time.Now()})
}

func (d sessionDao) GetOneByToken(token string) (session model.Session, err error) {
	err = d.db.One("Token", token, &session)
	return
}

func (d sessionDao) DeleteByToken(token string) error {
	var session model.Session
	err := d.db.One("Token", token, &session)
	if err != nil {
		return err
	}
	return d.db.DeleteStruct(&session)
}

func (d sessionDao) RemoveOlderThanHours(hours int) error {
	err := d.db.Select(q.Lt("CreatedAt", time.Now().Add(-time.Duration(hours)*time.Hour))).Delete(&model.Session{})
	if err != nil && err.Error() != "not found" {
		return err
	}
	return nil
}
