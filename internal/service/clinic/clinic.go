package clinic

import (
	"context"
	"strconv"
	"strings"

	"akshara/clinic-queue/internal/broadcast"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/queue"
	"akshara/clinic-queue/internal/schedule"
)

const publicSearchLimit = 10

// Register adds a new arrival to the queue.
func (s *Service) Register(ctx context.Context, input queue.AddInput, actor string) (domain.QueueEntry, error) {
	entry, err := s.store.Add(input)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	s.afterMutation(ctx, domain.EventEntryRegistered, entry.Token, actor)
	return entry, nil
}

// StartConsult opens the consult for a waiting entry.
func (s *Service) StartConsult(ctx context.Context, token int, actor string) (domain.QueueEntry, error) {
	entry, err := s.lifecycle.Start(token)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	s.afterMutation(ctx, domain.EventConsultStarted, token, actor)
	return entry, nil
}

// EndConsult closes an active consult. The second return value is the newly
// computed average consult duration in minutes.
func (s *Service) EndConsult(ctx context.Context, token int, doctor string) (domain.QueueEntry, int, error) {
	entry, average, err := s.lifecycle.End(token)
	if err != nil {
		return domain.QueueEntry{}, 0, err
	}

	record := domain.ConsultRecord{
		Token:       entry.Token,
		Doctor:      doctor,
		StartTime:   *entry.StartTime,
		EndTime:     *entry.EndTime,
		DurationMin: int(entry.EndTime.Sub(*entry.StartTime).Minutes()),
	}
	if err := s.consults.Insert(ctx, record); err != nil {
		s.logger.Error(err)
	}

	s.afterMutation(ctx, domain.EventConsultEnded, token, doctor)
	return entry, average, nil
}

// ReopenConsult moves a done entry back into consult; rejected unless the
// deployment enables reopening.
func (s *Service) ReopenConsult(ctx context.Context, token int, actor string) (domain.QueueEntry, error) {
	entry, err := s.lifecycle.Reopen(token)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	s.afterMutation(ctx, domain.EventConsultReopened, token, actor)
	return entry, nil
}

// MarkNoShow flags a waiting entry that never showed up.
func (s *Service) MarkNoShow(ctx context.Context, token int, actor string) (domain.QueueEntry, error) {
	entry, err := s.lifecycle.MarkNoShow(token)
	if err != nil {
		return domain.QueueEntry{}, err
	}

	s.afterMutation(ctx, domain.EventEntryNoShow, token, actor)
	return entry, nil
}

// SetDoctorPresence flips the presence flag; waiting ETAs re-anchor to now
// while the doctor is present and nobody is in consult.
func (s *Service) SetDoctorPresence(ctx context.Context, present bool, actor string) bool {
	s.store.SetDoctorPresent(present)
	s.afterMutation(ctx, domain.EventPresenceChanged, 0, actor)
	return present
}

// ResetDay clears the queue, restores the estimator default and marks the
// doctor absent. This is the day rollover.
func (s *Service) ResetDay(ctx context.Context, actor string) error {
	s.store.Reset(s.defaultAverageMinutes)

	if err := s.appointments.DeleteAll(ctx); err != nil {
		s.logger.Error(err)
	}

	s.emit(domain.EventDayReset, 0, actor)
	s.hub.Publish(s.View())
	return nil
}

// View projects the current display view from a consistent snapshot.
func (s *Service) View() domain.QueueView {
	entries, doctorPresent, average := s.store.Snapshot()
	return schedule.ComputeView(entries, doctorPresent, average, s.now())
}

// Subscribe registers a live observer; it receives the current view
// immediately and every published view afterwards.
func (s *Service) Subscribe() *broadcast.Subscriber {
	return s.hub.Subscribe(s.View())
}

func (s *Service) Unsubscribe(sub *broadcast.Subscriber) {
	s.hub.Unsubscribe(sub)
}

// ConsultHistory lists completed consults, newest first.
func (s *Service) ConsultHistory(ctx context.Context, limit, offset int) ([]domain.ConsultRecord, int64, error) {
	return s.consults.List(ctx, limit, offset)
}

// Restore reloads the persisted snapshot into the store, typically at
// startup. Token numbering resumes above the highest restored token.
func (s *Service) Restore(ctx context.Context) error {
	entries, err := s.appointments.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.store.Load(entries)
	return nil
}

// SearchPublic matches token, name or phone against the query and returns at
// most ten masked rows. Names are masked unless the caller matched on phone
// or token, so a passerby typing a common first name cannot enumerate
// patients.
func (s *Service) SearchPublic(query string) []domain.MaskedEntry {
	view := s.View()

	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimPrefix(q, "t-")

	results := make([]domain.MaskedEntry, 0, publicSearchLimit)
	for _, row := range view.Entries {
		tokenStr := strconv.Itoa(row.Token)

		matchToken := q != "" && strings.Contains(tokenStr, q)
		matchPhone := q != "" && row.Phone != "" && strings.Contains(strings.ToLower(row.Phone), q)
		matchName := q != "" && strings.Contains(strings.ToLower(row.Name), q)

		if q != "" && !matchToken && !matchPhone && !matchName {
			continue
		}

		masked := domain.MaskedEntry{
			Token:  row.Token,
			Phone:  row.Phone,
			Status: row.Status,
			ETA:    row.ETA,
		}
		if matchPhone || matchToken {
			masked.NameMasked = row.Name
		} else {
			masked.NameMasked = maskName(row.Name)
		}

		results = append(results, masked)
		if len(results) == publicSearchLimit {
			break
		}
	}

	return results
}

func maskName(name string) string {
	first := name
	if fields := strings.Fields(strings.TrimSpace(name)); len(fields) > 0 {
		first = fields[0]
	}

	runes := []rune(first)
	if len(runes) <= 3 {
		return first
	}
	return string(runes[0]) + "***" + string(runes[len(runes)-2:])
}

// afterMutation runs the post-commit side effects: persist the snapshot,
// export the audit event, push the recomputed view to subscribers. Called
// only after a successful transition; failures here are logged, never
// propagated back to the mutating caller.
func (s *Service) afterMutation(ctx context.Context, eventType domain.EventType, token int, actor string) {
	entries, _, _ := s.store.Snapshot()
	if err := s.appointments.SaveAll(ctx, entries); err != nil {
		s.logger.Error(err)
	}

	s.emit(eventType, token, actor)

	s.hub.Publish(s.View())
}
