package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vhdlast/internal/loader"
	"vhdlast/internal/ui"
)

type loadOutcome struct {
	results []loader.Result
	err     error
}

func runLoadWithUI(ctx context.Context, title string, names []string, req *loader.Request) ([]loader.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan loader.Event, 256)
	outcomeCh := make(chan loadOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = loader.ChannelSink{Ch: events}
		res, err := loader.LoadAll(ctx, &reqCopy)
		outcomeCh <- loadOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c): отменяем загрузку и дочитываем события
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
