package storeconfig

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	configerrors "github.com/ray0128/sunday-for-rayinhair/internal/storeconfig/errors"
)

var knownKeys = map[string]bool{
	KeySafetyFactor:                  true,
	KeyAssistantSupply:               true,
	KeyRookieSupportSupply:           true,
	KeyRookieGuestSupply:             true,
	KeyDesignerDefaultDemand:         true,
	KeyPhase1StartDay:                true,
	KeyPhase1EndDay:                  true,
	KeyPhase2StartDay:                true,
	KeyPhase2EndDay:                  true,
	KeyAssistantBlockSaturday:        true,
	KeyAssistantBlockIfMasterWorking: true,
	KeyRookieAnyBookingSupplyZero:    true,
	KeyBindingMirrorLeave:            true,
	KeyClosedDates:                   true,
	KeyClosedWeekdays:                true,
}

type Service interface {
	GetSnapshot(ctx context.Context, storeID string) (SnapshotResponse, error)
	ListCurrent(ctx context.Context, storeID string) ([]ConfigEntryResponse, error)
	Upsert(ctx context.Context, storeID string, req UpsertConfigRequest) (ConfigEntryResponse, error)
	// LoadSnapshot is the engine-facing accessor used by other services.
	LoadSnapshot(ctx context.Context, storeID string) (Snapshot, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("storeconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storeconfig.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) LoadSnapshot(ctx context.Context, storeID string) (Snapshot, error) {
	entries, err := s.repo.LoadCurrent(ctx, storeID)
	if err != nil {
		return Snapshot{}, err
	}
	return BuildSnapshot(entries), nil
}

func (s *service) GetSnapshot(ctx context.Context, storeID string) (SnapshotResponse, error) {
	snap, err := s.LoadSnapshot(ctx, storeID)
	if err != nil {
		return SnapshotResponse{}, err
	}
	return mapSnapshot(snap), nil
}

func (s *service) ListCurrent(ctx context.Context, storeID string) ([]ConfigEntryResponse, error) {
	entries, err := s.repo.LoadCurrent(ctx, storeID)
	if err != nil {
		return nil, err
	}

	resp := make([]ConfigEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = ConfigEntryResponse{Key: e.Key, Value: e.Value}
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].Key < resp[j].Key })
	return resp, nil
}

func (s *service) Upsert(ctx context.Context, storeID string, req UpsertConfigRequest) (ConfigEntryResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return ConfigEntryResponse{}, configerrors.ErrInvalidStoreID
	}
	if !knownKeys[req.Key] {
		return ConfigEntryResponse{}, configerrors.ErrUnknownConfigKey
	}

	var scalar any
	if err := json.Unmarshal([]byte(req.Value), &scalar); err != nil {
		return ConfigEntryResponse{}, configerrors.ErrInvalidConfigValue
	}
	switch scalar.(type) {
	case float64, bool, string:
	default:
		return ConfigEntryResponse{}, configerrors.ErrInvalidConfigValue
	}

	entry := &ConfigEntry{
		ID:      uuid.New(),
		StoreID: storeUUID,
		Key:     req.Key,
		Value:   req.Value,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		s.logger.Error("upsert config persist failed",
			zap.String("store_id", storeID),
			zap.String("key", req.Key),
			zap.Error(err),
		)
		return ConfigEntryResponse{}, err
	}

	s.logger.Info("upsert config success",
		zap.String("store_id", storeID),
		zap.String("key", req.Key),
	)
	return ConfigEntryResponse{Key: entry.Key, Value: entry.Value}, nil
}

func mapSnapshot(snap Snapshot) SnapshotResponse {
	return SnapshotResponse{
		SafetyFactor:                  snap.SafetyFactor,
		AssistantSupply:               snap.AssistantSupply,
		RookieSupportSupply:           snap.RookieSupportSupply,
		RookieGuestSupply:             snap.RookieGuestSupply,
		DesignerDefaultDemand:         snap.DesignerDefaultDemand,
		Phase1StartDay:                snap.Phase1StartDay,
		Phase1EndDay:                  snap.Phase1EndDay,
		Phase2StartDay:                snap.Phase2StartDay,
		Phase2EndDay:                  snap.Phase2EndDay,
		AssistantBlockSaturday:        snap.AssistantBlockSaturday,
		AssistantBlockIfMasterWorking: snap.AssistantBlockIfMasterWorking,
		RookieAnyBookingSupplyZero:    snap.RookieAnyBookingSupplyZero,
		BindingMirrorLeave:            snap.BindingMirrorLeave,
		ClosedDates:                   sortedKeys(snap.ClosedDates),
		ClosedWeekdays:                sortedKeys(snap.ClosedWeekdays),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
