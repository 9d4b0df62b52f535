package infra_dxmate

import (
	"context"
	"net/http"

	"github.com/dxmate/dxmate-bot/internal/model"
)

func (c *Client) CheckInMatch(ctx context.Context, discordID string) (bool, error) {
	var inMatch bool
	if err := c.do(ctx, http.MethodGet, playerPath(discordID, "in-match", "check"), nil, nil, &inMatch); err != nil {
		return false, err
	}
	return inMatch, nil
}

func (c *Client) IsRegistered(ctx context.Context, discordID string) (bool, error) {
	var registered bool
	if err := c.do(ctx, http.MethodGet, playerPath(discordID, "check"), nil, nil, &registered); err != nil {
		return false, err
	}
	return registered, nil
}

func (c *Client) Register(ctx context.Context, reg model.Registration) error {
	return c.do(ctx, http.MethodPost, "/players", nil, reg, nil)
}

func (c *Client) GetPlayer(ctx context.Context, discordID string) (model.PlayerRecord, error) {
	var p model.PlayerRecord
	if err := c.do(ctx, http.MethodGet, playerPath(discordID), nil, nil, &p); err != nil {
		return model.PlayerRecord{}, err
	}
	if p.DiscordID == "" {
		p.DiscordID = discordID
	}
	return p, nil
}

type playerSkillRequest struct {
	DiscordID string      `json:"discordId"`
	Skill     model.Skill `json:"skill"`
}

func (c *Client) UpdatePlayerSkill(ctx context.Context, format model.Format, discordID string, skill model.Skill) error {
	path := "/players/skill/" + string(format) + "/update"
	return c.do(ctx, http.MethodPost, path, nil, playerSkillRequest{DiscordID: discordID, Skill: skill}, nil)
}

type discordIDRequest struct {
	DiscordID string `json:"discordId"`
}

func (c *Client) AddRankedMatchCount(ctx context.Context, format model.Format, discordID string) error {
	path := "/players/ranked-match-count/" + string(format) + "/add"
	return c.do(ctx, http.MethodPost, path, nil, discordIDRequest{DiscordID: discordID}, nil)
}

func (c *Client) Leaderboard(ctx context.Context, format model.Format) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, "/leaderboard/"+string(format), nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
