// internal/room/room_test.go
package room

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

func newPlayer(name string) *models.Player {
	return &models.Player{ID: uuid.New(), Username: name}
}

func TestJoinAndCapacity(t *testing.T) {
	owner := newPlayer("ana")
	r, err := New("sala", owner, 2, 2, "")
	require.NoError(t, err)

	assert.False(t, r.IsPrivate())
	assert.Equal(t, ErrAlreadyInRoom, r.Join(owner, ""))

	guest := newPlayer("beto")
	require.NoError(t, r.Join(guest, ""))
	assert.True(t, r.HasPlayer(guest.ID))

	assert.Equal(t, ErrRoomFull, r.Join(newPlayer("carla"), ""))
}

func TestJoinPassword(t *testing.T) {
	r, err := New("privada", newPlayer("ana"), 2, 4, "secreta1")
	require.NoError(t, err)
	assert.True(t, r.IsPrivate())

	guest := newPlayer("beto")
	assert.Equal(t, ErrWrongPassword, r.Join(guest, "otracosa"))
	assert.False(t, r.HasPlayer(guest.ID))

	require.NoError(t, r.Join(guest, "secreta1"))
	assert.True(t, r.HasPlayer(guest.ID))
}

func TestMarkStarted(t *testing.T) {
	r, err := New("sala", newPlayer("ana"), 2, 4, "")
	require.NoError(t, err)

	assert.Equal(t, game.ErrNotEnoughPlayers, r.MarkStarted())

	require.NoError(t, r.Join(newPlayer("beto"), ""))
	require.NoError(t, r.MarkStarted())
	assert.Equal(t, ErrGameStarted, r.MarkStarted())

	assert.Equal(t, ErrGameStarted, r.Join(newPlayer("carla"), ""))
}

func TestLeave(t *testing.T) {
	owner := newPlayer("ana")
	r, err := New("sala", owner, 2, 4, "")
	require.NoError(t, err)
	guest := newPlayer("beto")
	require.NoError(t, r.Join(guest, ""))

	_, err = r.Leave(uuid.New())
	assert.Equal(t, ErrNotInRoom, err)

	cancelled, err := r.Leave(guest.ID)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.False(t, r.HasPlayer(guest.ID))

	cancelled, err = r.Leave(owner.ID)
	require.NoError(t, err)
	assert.True(t, cancelled, "owner leaving cancels the room")
}

func TestInfo(t *testing.T) {
	owner := newPlayer("ana")
	r, err := New("sala", owner, 2, 4, "clave")
	require.NoError(t, err)
	require.NoError(t, r.Join(newPlayer("beto"), "clave"))

	info := r.Info()
	assert.Equal(t, r.ID, info.RoomID)
	assert.Equal(t, "sala", info.RoomName)
	assert.Equal(t, 2, info.CurrentPlayers)
	assert.Equal(t, 4, info.MaxPlayers)
	assert.True(t, info.Private)
	assert.False(t, info.Started)
}

func TestRoomStoreListSortedByName(t *testing.T) {
	store := NewRoomStore()
	for _, name := range []string{"zorro", "alfa", "medio"} {
		r, err := New(name, newPlayer(name), 2, 4, "")
		require.NoError(t, err)
		store.AddRoom(r)
	}

	infos := store.ListRooms()
	require.Len(t, infos, 3)
	assert.Equal(t, "alfa", infos[0].RoomName)
	assert.Equal(t, "medio", infos[1].RoomName)
	assert.Equal(t, "zorro", infos[2].RoomName)
}
