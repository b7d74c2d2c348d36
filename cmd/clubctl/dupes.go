package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/dedup"
	"github.com/dmitrymomot/clubledger/pkg/logger"
)

// duplicatePair is one pair found by a full scan.
type duplicatePair struct {
	ClientID    string        `json:"clientId"`
	DuplicateID string        `json:"duplicateId"`
	Matches     []dedup.Match `json:"matches"`
}

func runDupes(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("dupes", flag.ContinueOnError)
	all := fs.Bool("all", false, "scan every stored client for contact duplicates")
	var candidate club.Client
	fs.StringVar(&candidate.FullName, "name", "", "full name")
	fs.StringVar(&candidate.ParentName, "parent", "", "parent name")
	fs.StringVar(&candidate.Phone, "phone", "", "phone")
	fs.StringVar(&candidate.WhatsApp, "whatsapp", "", "WhatsApp number")
	fs.StringVar(&candidate.Telegram, "telegram", "", "Telegram handle or link")
	fs.StringVar(&candidate.Instagram, "instagram", "", "Instagram handle or link")
	fs.StringVar(&candidate.Area, "area", "", "area")
	fs.StringVar(&candidate.Group, "group", "", "group")
	exclude := fs.String("exclude", "", "client id to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clients, err := a.store.Clients.List(ctx)
	if err != nil {
		return err
	}

	if *all {
		pairs := scanDuplicates(clients)
		a.log.InfoContext(ctx, "duplicate scan finished", logger.Count(len(pairs)))
		return writeJSON(a.out, pairs)
	}

	if !hasSearchField(candidate) {
		return fmt.Errorf("%w: -all or at least one field", ErrMissingFlag)
	}
	found := dedup.FindClientDuplicates(clients, candidate, dedup.ExcludeID(*exclude))
	return writeJSON(a.out, found)
}

// scanDuplicates reports each pair of stored clients sharing a contact once.
// Name or group matches alone are too common to report.
func scanDuplicates(clients []club.Client) []duplicatePair {
	pairs := []duplicatePair{}
	for i, c := range clients {
		for _, d := range dedup.FindClientDuplicates(clients[i+1:], c) {
			if !d.HasContact() {
				continue
			}
			pairs = append(pairs, duplicatePair{ClientID: c.ID, DuplicateID: d.Client.ID, Matches: d.Matches})
		}
	}
	return pairs
}

func hasSearchField(c club.Client) bool {
	for _, v := range []string{c.FullName, c.ParentName, c.Phone, c.WhatsApp, c.Telegram, c.Instagram, c.Area, c.Group} {
		if v != "" {
			return true
		}
	}
	return false
}
