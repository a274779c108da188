package dao

import (
	"time"

	"github.com/akinwale/sms-blast/model"
	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
)

type ContactDao interface {
	//CreateAll persists the whole ingest batch, assigning ids and creation times
	CreateAll(contacts []model.Contact) error
	//GetPendingByOwner returns unsent contacts of the owner, most recent first
	GetPendingByOwner(ownerId uint32) ([]model.Contact, error)
	//GetAllByOwner returns all contacts of the owner, most recent first
	GetAllByOwner(ownerId uint32) ([]model.Contact, error)
	//MarkSent flips the contact with the given id to sent
	MarkSent(id uint32) error
}

func NewContactDao(db Db) ContactDao {
	return &contactDao{db: db}
}

type contactDao struct {
	db Db
}

func (d contactDao) CreateAll(contacts []model.Contact) error {
	for i := range contacts {
		contacts[i].CreatedAt = time.Now()
		if err := d.db.Save(&contacts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d contactDao) GetPendingByOwner(ownerId uint32) ([]model.Contact, error) {
	var contacts []model.Contact
	err := d.db.Select(q.Eq("OwnerId", ownerId), q.Eq("Sent", false)).
		OrderBy("CreatedAt").Reverse().Find(&contacts)
	if err == storm.ErrNotFound {
		return nil, nil
	}
	return contacts, err
}

func (d contactDao) GetAllByOwner(ownerId uint32) ([]model.Contact, error) {
	var contacts []model.Contact
	err := d.db.Select(q.Eq("OwnerId", ownerId)).
		OrderBy("CreatedAt").Reverse().Find(&contacts)
	if err == storm.ErrNotFound {
		return nil, nil
	}
	return contacts, err
}

func (d contactDao) MarkSent(id uint32) error {
	var contact model.Contact
	err := d.db.One("Id", id, &contact)
	if err != nil {
		return err
	}
	contact.Sent = true
	return d.db.Update(&contact)
}
