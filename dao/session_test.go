package dao

import (
	"testing"
	"time"

	"github.com/akinwale/sms-blast/model"
	"github.com/stretchr/testify/require"
)

const (
	TOKEN  = "abcdefghijklmnopqrstuvwxyz0123456789ABCD"
	TOKEN2 = "ABCD0123456789zyxwvutsrqponmlkjihgfedcba"
)

func TestSessionDao_CreateAndGet(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	sessionDao := NewSessionDao(db)

	err := sessionDao.Create(OWNER1, TOKEN)

	require.NoError(t, err)

	session, err := sessionDao.GetOneByToken(TOKEN)

	require.NoError(t, err)
	require.Equal(t, OWNER1, session.OwnerId)
	require.False(t, session.CreatedAt.IsZero())
}

func TestSessionDao_DeleteByToken(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	sessionDao := NewSessionDao(db)

	require.NoError(t, sessionDao.Create(OWNER1, TOKEN))

	err := sessionDao.DeleteByToken(TOKEN)

	require.NoError(t, err)

	_, err = sessionDao.GetOneByToken(TOKEN)

	require.Error(t, err)

	err = sessionDao.DeleteByToken(TOKEN)

	require.Error(t, err)
}

func TestSessionDao_RemoveOlderThanHours(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	sessionDao := NewSessionDao(db)

	stale := &model.Session{OwnerId: OWNER1, Token: TOKEN, CreatedAt: time.Now().Add(-25 * time.Hour)}
	require.NoError(t, db.Save(stale))
	fresh := &model.Session{OwnerId: OWNER1, Token: TOKEN2, CreatedAt: time.Now()}
	require.NoError(t, db.Save(fresh))

	err := sessionDao.RemoveOlderThanHours(24)

	require.NoError(t, err)

	_, err = sessionDao.GetOneByToken(TOKEN)
	require.Error(t, err)

	_, err = sessionDao.GetOneByToken(TOKEN2)
	require.NoError(t, err)
}

func TestSessionDao_RemoveOlderThanHoursEmptyDb(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	sessionDao := NewSessionDao(db)

	err := sessionDao.RemoveOlderThanHours(24)

	require.NoError(t, err)
}
