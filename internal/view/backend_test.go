package view

import (
	"context"

	"botdash/internal/api"
)

type nopBackend struct{}

func (nopBackend) Stats(context.Context) (*api.StatsSnapshot, error)         { return nil, nil }
func (nopBackend) Users(context.Context) (*api.UsersResponse, error)         { return nil, nil }
func (nopBackend) Referrals(context.Context) (*api.ReferralsResponse, error) { return nil, nil }
func (nopBackend) SetWebhook(context.Context) (*api.WebhookResult, error)    { return nil, nil }
func (nopBackend) TestUsersbox(context.Context) (*api.UsersboxResult, error) { return nil, nil }
