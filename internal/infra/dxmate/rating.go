package infra_dxmate

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dxmate/dxmate-bot/internal/model"
)

func (c *Client) Rank(ctx context.Context, skill model.Skill) (model.Rank, error) {
	q := url.Values{}
	q.Set("mu", strconv.FormatFloat(skill.Mu, 'f', -1, 64))
	q.Set("sigma", strconv.FormatFloat(skill.Sigma, 'f', -1, 64))

	var r model.Rank
	if err := c.do(ctx, http.MethodGet, "/rank", q, nil, &r); err != nil {
		return model.Rank{}, err
	}
	return r, nil
}

type singlesSkillRequest struct {
	WinnerSkill model.Skill `json:"winnerSkill"`
	LoserSkill  model.Skill `json:"loserSkill"`
}

type singlesSkillResponse struct {
	Winner model.Skill `json:"winner"`
	Loser  model.Skill `json:"loser"`
}

func (c *Client) UpdateSinglesSkill(ctx context.Context, winner, loser model.Skill) (model.Skill, model.Skill, error) {
	var resp singlesSkillResponse
	req := singlesSkillRequest{WinnerSkill: winner, LoserSkill: loser}
	if err := c.do(ctx, http.MethodPost, "/skill/singles/update", nil, req, &resp); err != nil {
		return model.Skill{}, model.Skill{}, err
	}
	return resp.Winner, resp.Loser, nil
}

type doublesSkillRequest struct {
	Winner1Skill model.Skill `json:"winner1Skill"`
	Winner2Skill model.Skill `json:"winner2Skill"`
	Loser1Skill  model.Skill `json:"loser1Skill"`
	Loser2Skill  model.Skill `json:"loser2Skill"`
}

type doublesSkillResponse struct {
	Winners [2]model.Skill `json:"winners"`
	Losers  [2]model.Skill `json:"losers"`
}

func (c *Client) UpdateDoublesSkill(ctx context.Context, winners, losers [2]model.Skill) ([2]model.Skill, [2]model.Skill, error) {
	var resp doublesSkillResponse
	req := doublesSkillRequest{
		Winner1Skill: winners[0],
		Winner2Skill: winners[1],
		Loser1Skill:  losers[0],
		Loser2Skill:  losers[1],
	}
	if err := c.do(ctx, http.MethodPost, "/skill/doubles/update", nil, req, &resp); err != nil {
		return [2]model.Skill{}, [2]model.Skill{}, err
	}
	return resp.Winners, resp.Losers, nil
}
