package dao

import (
	"time"

	"github.com/akinwale/sms-blast/model"
	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
)

type TemplateDao interface {
	//Create creates a template record and returns its id
	Create(ownerId uint32, title, body string) (uint32, error)
	//GetOneByIdAndOwner returns the owner's template with the given id
	GetOneByIdAndOwner(id, ownerId uint32) (model.Template, error)
	//GetAllByOwner returns all templates of the owner, most recent first
	GetAllByOwner(ownerId uint32) ([]model.Template, error)
}

func NewTemplateDao(db Db) TemplateDao {
	return &templateDao{db: db}
}

type templateDao struct {
	db Db
}

func (d templateDao) Create(ownerId uint32, title, body string) (uint32, error) {
	tmpl := &model.Template{OwnerId: ownerId, Title: title, Body: body, CreatedAt: time.Now()}
	err := d.db.Save(tmpl)
	return tmpl.Id, err
}

func (d templateDao) GetOneByIdAndOwner(id, ownerId uint32) (model.Template, error) {
	var tmpl model.Template
	err := d.db.Select(q.Eq("Id", id), q.Eq("OwnerId", ownerId)).First(&tmpl)
	return tmpl, err
}

func (d templateDao) GetAllByOwner(ownerId uint32) ([]model.Template, error) {
	var templates []model.Template
	err := d.db.Select(q.Eq("OwnerId", ownerId)).
		OrderBy("CreatedAt").Reverse().Find(&templates)
	if err == storm.ErrNotFound {
		return nil, nil
	}
	return templates, err
}
