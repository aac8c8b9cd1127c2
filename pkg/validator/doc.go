// Package validator evaluates small declarative rules and collects every
// failure into a single error value.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply runs rules in the order given and returns a
// ValidationErrors slice that preserves that order, which callers rely on when
// they show messages to users.
//
//	err := validator.Apply(
//		validator.RequiredString("lang", cfg.Lang).WithMessage("Please choose a language from the menu."),
//		validator.RequiredString("name", cfg.Name),
//		validator.Custom("lang", func() bool { return table.Has(cfg.Lang) }, "unknown language"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		messages := verrs.Messages()
//	}
package validator
