package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Session is one connected player: the read loop, the message channel
// from the bus, and the command dispatch glue.
type Session struct {
	id   string
	conn io.ReadWriter
	mgr  *Manager
	msgs chan []byte
}

const welcomeBanner = `Benvenuto!
Digita 'aiuto' per l'elenco dei comandi.`

func (s *Session) play(ctx context.Context) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)

	// Closed when play returns so a pending send never strands the
	// reader goroutine; closing the connection cannot unblock it.
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-done:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	if err := s.writeLine(welcomeBanner); err != nil {
		return err
	}

	// Show the player where they woke up.
	player, ok := s.mgr.state.PlayerSnapshot(s.id)
	if !ok {
		return fmt.Errorf("player state not found for %s", s.id)
	}
	if err := s.writeLine(s.renderRoom(player.RoomId)); err != nil {
		return err
	}
	if err := s.writePrompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + string(msg)); err != nil {
				return err
			}
			if err := s.writePrompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost.
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := s.writePrompt(); err != nil {
					return err
				}
				continue
			}

			if err := s.handleLine(ctx, line); err != nil {
				return err
			}
			if err := s.writePrompt(); err != nil {
				return err
			}
		}
	}
}

// handleLine runs one command through the dispatcher and applies its
// result.
func (s *Session) handleLine(ctx context.Context, line string) error {
	cmdCtx, err := s.buildContext()
	if err != nil {
		return err
	}

	result := s.mgr.registry.Dispatch(cmdCtx, line)
	return s.apply(ctx, result)
}

func (s *Session) writePrompt() error {
	prompt := "> "
	if p, ok := s.mgr.state.PlayerSnapshot(s.id); ok {
		maxHp := p.EffectiveStats(s.mgr.state.Catalog().Item).MaxHp
		prompt = fmt.Sprintf("[%d/%d PF] > ", p.CurrentHp, maxHp)
	}
	_, err := s.conn.Write([]byte(prompt))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n\n"))
	return err
}
