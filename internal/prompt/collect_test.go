package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-figure/pkg/model"
)

type scriptedDriver struct {
	inputs   []string
	confirms []bool
	err      error
	messages []string
	rejected []error
}

// Input replays answers, asking again while the validator rejects them.
func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	for {
		out := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator == nil {
			return out, nil
		}
		err := cfg.Validator(out)
		if err == nil {
			return out, nil
		}
		d.rejected = append(d.rejected, err)
	}
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func TestCollect_WithStyleClass(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"chart.svg", "Revenue by quarter", " wide "},
		confirms: []bool{true},
	}

	got, err := Collect(context.Background(), driver, model.FigureInput{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := model.FigureInput{Src: "chart.svg", Caption: "Revenue by quarter", StyleClass: "wide"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Image source", "Caption", "Add a style class?", "Style class"}, driver.messages); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_WithoutStyleClass(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"cat.png", "A cat"},
		confirms: []bool{false},
	}

	got, err := Collect(context.Background(), driver, model.FigureInput{StyleClass: "ignored"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if diff := cmp.Diff(model.FigureInput{Src: "cat.png", Caption: "A cat"}, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_RequiresSource(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"", "   ", "cat.png", ""},
		confirms: []bool{false},
	}

	got, err := Collect(context.Background(), driver, model.FigureInput{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if diff := cmp.Diff(model.FigureInput{Src: "cat.png"}, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
	if len(driver.rejected) != 2 {
		t.Fatalf("expected two rejected answers, got %v", driver.rejected)
	}
	for _, err := range driver.rejected {
		if !errors.Is(err, ErrRequired) {
			t.Fatalf("expected ErrRequired, got %v", err)
		}
	}
}

func TestCollect_Errors(t *testing.T) {
	if _, err := Collect(context.Background(), nil, model.FigureInput{}); err == nil {
		t.Fatalf("expected error for nil driver")
	}

	driver := &scriptedDriver{err: ErrAborted}
	if _, err := Collect(context.Background(), driver, model.FigureInput{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSurveyDriver_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurveyDriver()
	if _, err := driver.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if _, err := driver.Confirm(ctx, ConfirmConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
