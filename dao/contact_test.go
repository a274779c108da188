package dao

import (
	"testing"
	"time"

	"github.com/akinwale/sms-blast/model"
	"github.com/stretchr/testify/require"
)

const (
	OWNER1 = uint32(1)
	OWNER2 = uint32(2)
	PHONE1 = "+996777123456"
	PHONE2 = "+996222987654"
	PHONE3 = "+234801234567"
)

func prepareContacts(t errorHandler) (Db, func()) {
	db, cleanup := createDB(t)

	amount := 15000.5
	rows := []model.Contact{
		{OwnerId: OWNER1, Phone: PHONE1, Name: "John", Amount: &amount, BatchDate: "2026-08-28", CreatedAt: time.Now().Add(-2 * time.Hour)},
		{OwnerId: OWNER1, Phone: PHONE2, BatchDate: "2026-08-28", CreatedAt: time.Now().Add(-1 * time.Hour)},
		{OwnerId: OWNER1, Phone: PHONE3, Sent: true, BatchDate: "2026-08-27", CreatedAt: time.Now().Add(-3 * time.Hour)},
		{OwnerId: OWNER2, Phone: PHONE3, BatchDate: "2026-08-28", CreatedAt: time.Now()},
	}
	for i := range rows {
		if err := db.Save(&rows[i]); err != nil {
			t.Error(err)
		}
	}

	return db, cleanup
}

func TestContactDao_CreateAll(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	contacts := []model.Contact{
		{OwnerId: OWNER1, Phone: PHONE1, Name: "John"},
		{OwnerId: OWNER1, Phone: PHONE2},
	}

	err := contactDao.CreateAll(contacts)

	require.NoError(t, err)
	require.True(t, contacts[0].Id > 0)
	require.True(t, contacts[1].Id > contacts[0].Id)
	require.False(t, contacts[0].CreatedAt.IsZero())
}

func TestContactDao_GetPendingByOwner(t *testing.T) {
	db, cleanup := prepareContacts(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	pending, err := contactDao.GetPendingByOwner(OWNER1)

	require.NoError(t, err)
	require.Equal(t, 2, len(pending))
	//most recent first
	require.Equal(t, PHONE2, pending[0].Phone)
	require.Equal(t, PHONE1, pending[1].Phone)
	for _, c := range pending {
		require.False(t, c.Sent)
	}
}

func TestContactDao_GetPendingByOwnerEmpty(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	pending, err := contactDao.GetPendingByOwner(OWNER1)

	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestContactDao_GetAllByOwner(t *testing.T) {
	db, cleanup := prepareContacts(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	all, err := contactDao.GetAllByOwner(OWNER1)

	require.NoError(t, err)
	require.Equal(t, 3, len(all))
}

func TestContactDao_MarkSent(t *testing.T) {
	db, cleanup := prepareContacts(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	pending, err := contactDao.GetPendingByOwner(OWNER1)
	require.NoError(t, err)

	err = contactDao.MarkSent(pending[0].Id)

	require.NoError(t, err)

	left, err := contactDao.GetPendingByOwner(OWNER1)
	require.NoError(t, err)
	require.Equal(t, len(pending)-1, len(left))
	for _, c := range left {
		require.NotEqual(t, pending[0].Id, c.Id)
	}
}

func TestContactDao_MarkSentUnknownId(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	contactDao := NewContactDao(db)

	err := contactDao.MarkSent(999)

	require.Error(t, err)
}
