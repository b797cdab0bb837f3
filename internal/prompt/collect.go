package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-figure/pkg/model"
)

// ErrRequired is returned by validators for blank answers.
var ErrRequired = errors.New("prompt: value is required")

func required(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrRequired, label)
		}
		return nil
	}
}

// Collect asks for the figure source, caption and an optional style class,
// offering defaults as pre-filled answers. The source must not be blank.
// Values are kept as typed; only the style class is trimmed, since a blank
// class means no presentation hook.
func Collect(ctx context.Context, driver Driver, defaults model.FigureInput) (model.FigureInput, error) {
	if driver == nil {
		return model.FigureInput{}, fmt.Errorf("prompt: driver is required")
	}

	var (
		out model.FigureInput
		err error
	)
	out.Src, err = driver.Input(ctx, InputConfig{
		Message:   "Image source",
		Default:   defaults.Src,
		Help:      "URL or path of the image",
		Validator: required("image source"),
	})
	if err != nil {
		return model.FigureInput{}, err
	}

	out.Caption, err = driver.Input(ctx, InputConfig{
		Message: "Caption",
		Default: defaults.Caption,
		Help:    "Shown below the image and used as its alt text",
	})
	if err != nil {
		return model.FigureInput{}, err
	}

	styled, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Add a style class?",
		Default: defaults.HasStyleClass(),
	})
	if err != nil {
		return model.FigureInput{}, err
	}
	if !styled {
		return out, nil
	}

	class, err := driver.Input(ctx, InputConfig{
		Message: "Style class",
		Default: defaults.StyleClass,
	})
	if err != nil {
		return model.FigureInput{}, err
	}
	out.StyleClass = strings.TrimSpace(class)
	return out, nil
}
