package pipeline

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
	"github.com/cardiometrix/cardiometrix-api/store"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

const logPrefix = "pipeline"

// Config carries the tunables of the derivation pipeline.
type Config struct {
	// TargetSleepHours is the nightly target sleep debt is measured against.
	TargetSleepHours float64

	// WeightJumpPercent is the 48-hour weight change that flags an anomaly.
	WeightJumpPercent float64

	// DefaultTimezone resolves calendar days for accounts without a
	// timezone of their own.
	DefaultTimezone string
}

// Pipeline derives risk scores, nudges and rollups from raw logs. Every
// operation recomputes from stored measurements; derived records are replaced,
// never appended.
type Pipeline struct {
	mongo  store.MongoStore
	cardio store.CardioCore
	scope  tally.Scope
	config Config
}

func New(mongo store.MongoStore, cardio store.CardioCore, scope tally.Scope, config Config) *Pipeline {
	if config.TargetSleepHours <= 0 {
		config.TargetSleepHours = score.DefaultTargetSleepHours
	}
	if config.WeightJumpPercent <= 0 {
		config.WeightJumpPercent = score.DefaultWeightJumpPercent
	}
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Pipeline{
		mongo:  mongo,
		cardio: cardio,
		scope:  scope,
		config: config,
	}
}

// userLocation resolves the timezone all of a user's calendar days live in.
func (p *Pipeline) userLocation(accountNumber string) (*time.Location, error) {
	account, err := p.cardio.GetAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	return utils.ResolveTimezone(account.Profile.Timezone, p.config.DefaultTimezone), nil
}

// measurementWindow loads every measurement inside [date-days+1, date], with
// calendar-day bounds in the given location.
func (p *Pipeline) measurementWindow(accountNumber, date string, days int, loc *time.Location) ([]schema.Measurement, error) {
	from, err := utils.DayStart(utils.AddDays(date, -(days-1)), loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	to, err := utils.DayStart(utils.AddDays(date, 1), loc)
	if err != nil {
		return nil, err
	}

	return p.mongo.ListMeasurements(accountNumber, "", from, to)
}

// ComputeDailyRisk runs the daily derivation of one user: feature snapshot,
// risk record and daily nudge, all keyed by the same date. An empty date
// means today in the user's timezone. Recomputing a day overwrites its
// derived records.
func (p *Pipeline) ComputeDailyRisk(accountNumber, asOfDate string) (*schema.RiskRecord, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	if asOfDate == "" {
		asOfDate = utils.DayKey(time.Now(), loc)
	}

	measurements, err := p.measurementWindow(accountNumber, asOfDate, 14, loc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	snapshot := score.ComputeFeatureSnapshot(accountNumber, asOfDate, measurements, loc, p.config.TargetSleepHours)
	snapshot.ComputedAt = now
	if err := p.mongo.SaveFeatureSnapshot(snapshot); err != nil {
		return nil, err
	}

	record := score.ComputeRisk(snapshot)
	record.ComputedAt = now
	if err := p.mongo.SaveRiskRecord(record); err != nil {
		return nil, err
	}

	if err := p.refreshDailyNudge(record, now); err != nil {
		return nil, err
	}

	p.scope.Counter("risk_computed").Inc(1)
	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"account":    accountNumber,
		"as_of_date": asOfDate,
		"band":       record.Band,
	}).Debug("daily risk computed")

	return &record, nil
}

// refreshDailyNudge saves the day's nudge. A nudge the user already acted on
// keeps its status; only a changed selection resets it to pending.
func (p *Pipeline) refreshDailyNudge(record schema.RiskRecord, now time.Time) error {
	item := score.PickDailyNudge(record.Band, record.Drivers, record.AsOfDate)

	existing, err := p.mongo.GetDailyNudge(record.UserID, record.AsOfDate)
	if err != nil {
		return err
	}
	if existing != nil && existing.Key == item.Key {
		return nil
	}

	return p.mongo.SaveDailyNudge(schema.DailyNudge{
		UserID:    record.UserID,
		AsOfDate:  record.AsOfDate,
		Key:       item.Key,
		Tag:       item.Tag,
		Text:      item.Text,
		Burden:    item.Burden,
		Status:    schema.NudgePending,
		CreatedAt: now,
	})
}

// TodayRisk returns the user's risk record for today, computing it on demand
// when the day has not been derived yet.
func (p *Pipeline) TodayRisk(accountNumber string) (*schema.RiskRecord, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	today := utils.DayKey(time.Now(), loc)

	record, err := p.mongo.GetRiskRecord(accountNumber, today)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	return p.ComputeDailyRisk(accountNumber, today)
}

// DailyNudge returns the user's nudge for today, deriving the day first when
// needed.
func (p *Pipeline) DailyNudge(accountNumber string) (*schema.DailyNudge, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	today := utils.DayKey(time.Now(), loc)

	nudge, err := p.mongo.GetDailyNudge(accountNumber, today)
	if err != nil {
		return nil, err
	}
	if nudge != nil {
		return nudge, nil
	}

	if _, err := p.ComputeDailyRisk(accountNumber, today); err != nil {
		return nil, err
	}

	return p.mongo.GetDailyNudge(accountNumber, today)
}

// SetNudgeStatus marks today's nudge done or snoozed.
func (p *Pipeline) SetNudgeStatus(accountNumber string, status schema.NudgeStatus) error {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return err
	}
	today := utils.DayKey(time.Now(), loc)

	return p.mongo.UpdateDailyNudgeStatus(accountNumber, today, status)
}
