package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/publication/pkg/validator"
)

// Messages reported by Validator, in evaluation order.
const (
	MsgLanguageRequired       = "Please choose a language from the menu."
	MsgNameRequired           = "Please enter your name into the name box."
	MsgEndpointRequired       = "No Push endpoint was provided."
	MsgSubscriptionIDRequired = "No Push subscription_id was provided."
)

// UnknownLanguageMessage is reported when lang is not in the greeting table.
func UnknownLanguageMessage(lang string) string {
	return fmt.Sprintf("We couldn't find the language you selected (%s) Please select another", lang)
}

// Languages reports whether a language key is known. *greeting.Table satisfies it.
type Languages interface {
	Has(lang string) bool
}

// Input is a configuration submitted for validation.
// Config is the raw JSON object entered by the user.
type Input struct {
	Config         string
	Endpoint       string
	SubscriptionID string
}

// Result is the outcome of a validation. Errors is never nil.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type userConfig struct {
	Language string `json:"lang"`
	Name     string `json:"name"`
}

// Validator checks submitted configurations and stores the valid ones.
type Validator struct {
	langs Languages
	store *Store
}

// NewValidator creates a Validator. Panics if langs or store is nil.
func NewValidator(langs Languages, store *Store) *Validator {
	if langs == nil || store == nil {
		panic("subscription: validator requires languages and store")
	}
	return &Validator{langs: langs, store: store}
}

// Validate runs every rule in order and, when all pass, saves the
// subscription under in.SubscriptionID, overwriting any previous one.
// It returns ErrMissingConfig or ErrMalformedConfig before any rule runs
// when the config cannot be read; nothing is stored in that case.
func (v *Validator) Validate(ctx context.Context, in Input) (Result, error) {
	cfg, err := parseConfig(in.Config)
	if err != nil {
		return Result{}, err
	}

	verr := validator.Apply(
		validator.RequiredString("lang", cfg.Language).WithMessage(MsgLanguageRequired),
		validator.RequiredString("name", cfg.Name).WithMessage(MsgNameRequired),
		validator.Custom("lang", func() bool { return v.langs.Has(cfg.Language) }, UnknownLanguageMessage(cfg.Language)),
		validator.RequiredString("endpoint", in.Endpoint).WithMessage(MsgEndpointRequired),
		validator.RequiredString("subscription_id", in.SubscriptionID).WithMessage(MsgSubscriptionIDRequired),
	)
	if verr != nil {
		return Result{Valid: false, Errors: validator.ExtractValidationErrors(verr).Messages()}, nil
	}

	sub := Subscription{
		ID:       in.SubscriptionID,
		Name:     cfg.Name,
		Language: cfg.Language,
		Endpoint: in.Endpoint,
	}
	if err := v.store.Save(ctx, sub); err != nil {
		return Result{}, err
	}

	return Result{Valid: true, Errors: []string{}}, nil
}

func parseConfig(raw string) (userConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return userConfig{}, ErrMissingConfig
	}

	data := []byte(raw)
	if !bytes.HasPrefix(data, []byte("{")) {
		return userConfig{}, ErrMalformedConfig
	}

	var cfg userConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return userConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return cfg, nil
}
