package infra_dxmate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/dxmate/dxmate-bot/internal/model"
)

// SearchRoom joins a compatible open room; model.EmptyRoomID means none matched.
func (c *Client) SearchRoom(ctx context.Context, criteria model.RoomCriteria) (model.RoomID, error) {
	raw, err := c.send(ctx, http.MethodPost, "/rooms/search", nil, criteria)
	if err != nil {
		return model.EmptyRoomID, err
	}
	return parseRoomID(raw), nil
}

func (c *Client) CreateRoom(ctx context.Context, criteria model.RoomCriteria) (model.RoomID, error) {
	raw, err := c.send(ctx, http.MethodPost, "/rooms", nil, criteria)
	if err != nil {
		return model.EmptyRoomID, err
	}
	id := parseRoomID(raw)
	if id == model.EmptyRoomID {
		return model.EmptyRoomID, errors.Join(model.ErrDirectoryUnavailable, errors.New("room was not created"))
	}
	return id, nil
}

func parseRoomID(raw []byte) model.RoomID {
	if len(raw) == 0 || string(raw) == "null" {
		return model.EmptyRoomID
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return model.RoomID(id)
	}
	return model.RoomID(raw)
}

// GetRoom returns nil once the room no longer exists.
func (c *Client) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	var room *model.Room
	err := c.do(ctx, http.MethodGet, "/rooms/"+url.PathEscape(string(id)), nil, nil, &room)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

type roomIDRequest struct {
	RoomID model.RoomID `json:"roomId"`
}

// DeleteRoom is idempotent: a room that is already gone is not an error.
func (c *Client) DeleteRoom(ctx context.Context, id model.RoomID) error {
	err := c.do(ctx, http.MethodPost, "/rooms/delete", nil, roomIDRequest{RoomID: id}, nil)
	if errors.Is(err, model.ErrNotFound) {
		c.logger.Debug("room already deleted", "room_id", id)
		return nil
	}
	return err
}

type createTeamRequest struct {
	Players []model.RoomPlayer `json:"players"`
}

func (c *Client) CreateTeam(ctx context.Context, players []model.RoomPlayer) ([]model.RoomPlayer, error) {
	var teamed []model.RoomPlayer
	if err := c.do(ctx, http.MethodPost, "/rooms/team/create", nil, createTeamRequest{Players: players}, &teamed); err != nil {
		return nil, err
	}
	return teamed, nil
}

func (c *Client) CreateDoublesConnectCode(ctx context.Context) (string, error) {
	return c.doText(ctx, http.MethodGet, "/rooms/team/connect-code/create")
}
