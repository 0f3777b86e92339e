// Package set owns giveset selection sessions: which sets were offered,
// which are toggled on, and the aggregate block built from them.
package set

//go:generate mockgen -destination=mock/mock_service.go -package=mockset -source=service.go

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clodbot/clodbot-discord/internal/clients/smogon"
	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/moveset"
	"github.com/clodbot/clodbot-discord/internal/uuid"
)

const (
	// Sessions without toggles for this long are swept away.
	defaultIdleTimeout = 10 * time.Minute

	janitorInterval = 30 * time.Second

	// Random mode caps the sample count to keep one message readable.
	maxRandomCount = 10
)

// Service defines the set selection interface
type Service interface {
	// Open starts a selection session, fetching choices for every request
	Open(ctx context.Context, input *OpenInput) (*entities.SelectionState, error)

	// Toggle flips one set on or off and returns the new aggregate
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleResult, error)

	// Close dismisses a session and cancels its in-flight fetches. The
	// closed state is returned so callers can clean up its messages.
	Close(sessionID, userID string) (*entities.SelectionState, error)

	// SetGroupMessageID records the button-grid message of a group
	SetGroupMessageID(sessionID string, groupIndex int, messageID string) error

	// SetAggregateMessageID records the current aggregate message, empty
	// when it was deleted
	SetAggregateMessageID(sessionID, messageID string) error

	// Random samples count random sets and returns the concatenated blocks
	Random(ctx context.Context, count int) (string, error)

	// Shutdown stops the expiry sweep and closes every session
	Shutdown()
}

// OpenInput contains data for starting a session
type OpenInput struct {
	OwnerID   string
	ChannelID string
	Requests  []entities.SetRequest
}

// ToggleInput identifies one button press
type ToggleInput struct {
	SessionID  string
	UserID     string
	GroupIndex int
	SetName    string
}

// ToggleResult is the outcome of a toggle
type ToggleResult struct {
	State *entities.SelectionState

	// Selected is the set's state after the toggle
	Selected bool

	// Aggregate is the full text to display, empty when nothing is selected
	Aggregate string
}

// session pairs selection state with its lock and fetch lifetime.
type session struct {
	mu     sync.Mutex
	state  *entities.SelectionState
	ctx    context.Context
	cancel context.CancelFunc
}

// service implements the Service interface
type service struct {
	catalog       smogon.Client
	formatter     *moveset.Formatter
	uuidGenerator uuid.Generator
	random        moveset.Randomizer
	idleTimeout   time.Duration
	now           func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session

	stopJanitor chan struct{}
	stopOnce    sync.Once
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog       smogon.Client      // Required
	Formatter     *moveset.Formatter // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	Randomizer    moveset.Randomizer // Optional, will use default if nil
	IdleTimeout   time.Duration      // Optional, defaults to 10 minutes
	Now           func() time.Time   // Optional, defaults to time.Now
}

// NewService creates a new set selection service and starts its expiry sweep
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog client is required")
	}
	if cfg.Formatter == nil {
		panic("formatter is required")
	}

	svc := &service{
		catalog:       cfg.Catalog,
		formatter:     cfg.Formatter,
		uuidGenerator: cfg.UUIDGenerator,
		random:        cfg.Randomizer,
		idleTimeout:   cfg.IdleTimeout,
		now:           cfg.Now,
		sessions:      make(map[string]*session),
		stopJanitor:   make(chan struct{}),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.random == nil {
		svc.random = moveset.NewRandomizer()
	}
	if svc.idleTimeout == 0 {
		svc.idleTimeout = defaultIdleTimeout
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	go svc.janitor()

	return svc
}

func (s *service) Open(ctx context.Context, input *OpenInput) (*entities.SelectionState, error) {
	if input == nil {
		return nil, clerr.BadArguments("input cannot be nil")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, clerr.BadArguments("owner ID is required")
	}
	if len(input.Requests) == 0 {
		return nil, clerr.BadArguments("at least one Pokemon is required")
	}

	groups := make([]*entities.SetGroup, len(input.Requests))

	// Fetch every request concurrently; the grid waits on the full set.
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range input.Requests {
		g.Go(func() error {
			group, err := s.resolveGroup(gctx, req)
			if err != nil {
				return err
			}
			groups[i] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	state := &entities.SelectionState{
		ID:         s.uuidGenerator.New(),
		OwnerID:    input.OwnerID,
		ChannelID:  input.ChannelID,
		Groups:     groups,
		CreatedAt:  now,
		LastToggle: now,
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	sess := &session{
		state:  state,
		ctx:    sessCtx,
		cancel: cancel,
	}

	s.mu.Lock()
	s.sessions[state.ID] = sess
	s.mu.Unlock()

	return state, nil
}

// resolveGroup normalizes one request and fetches its choices. Missing
// generation resolves to the newest with sets, missing format to the first.
func (s *service) resolveGroup(ctx context.Context, req entities.SetRequest) (*entities.SetGroup, error) {
	slug := Slugify(req.Pokemon)
	if slug == "" {
		return nil, clerr.BadArguments("Pokemon name is required")
	}

	generation := req.Generation
	if generation == "" {
		latest, err := s.catalog.LatestGeneration(ctx, slug)
		if err != nil {
			return nil, err
		}
		generation = latest
	} else {
		code, ok := smogon.NormalizeGeneration(generation)
		if !ok {
			return nil, clerr.NotFoundf("unknown generation %q", generation)
		}
		generation = code
	}

	format := req.Format
	if format == "" {
		first, err := s.catalog.FirstFormat(ctx, slug, generation)
		if err != nil {
			return nil, err
		}
		format = first
	}

	setNames, err := s.catalog.SetNames(ctx, slug, generation, format)
	if err != nil {
		return nil, err
	}

	return &entities.SetGroup{
		Pokemon:    slug,
		Generation: generation,
		Format:     format,
		SetNames:   setNames,
		Bodies:     make(map[string]string),
	}, nil
}

func (s *service) Toggle(ctx context.Context, input *ToggleInput) (*ToggleResult, error) {
	if input == nil {
		return nil, clerr.BadArguments("input cannot be nil")
	}

	sess, err := s.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.state
	if state.Closed {
		return nil, clerr.NotFound("session expired")
	}
	if input.UserID != state.OwnerID {
		return nil, clerr.Unauthorized("only the session owner may toggle sets")
	}
	if input.GroupIndex < 0 || input.GroupIndex >= len(state.Groups) {
		return nil, clerr.BadArgumentsf("no Pokemon at index %d", input.GroupIndex)
	}

	group := state.Groups[input.GroupIndex]
	if !containsString(group.SetNames, input.SetName) {
		return nil, clerr.NotFoundf("no set named %q for %s", input.SetName, group.Pokemon)
	}

	if _, cached := group.Bodies[input.SetName]; !cached && !group.IsSelected(input.SetName) {
		// Fetch with the session lock released so Close and idle expiry
		// can cancel mid-flight; fetches die with the session, not with
		// the toggle event.
		fetchCtx, cancel := context.WithTimeout(sess.ctx, 15*time.Second)
		sess.mu.Unlock()
		record, err := s.catalog.Moveset(fetchCtx, group.Pokemon, group.Generation, group.Format, input.SetName)
		cancel()
		sess.mu.Lock()
		if state.Closed {
			return nil, clerr.NotFound("session expired")
		}
		if err != nil {
			return nil, err
		}
		if _, cached := group.Bodies[input.SetName]; !cached {
			group.Bodies[input.SetName] = s.formatter.Format(record)
		}
	}

	selected := !group.IsSelected(input.SetName)
	if selected {
		group.Selected = append(group.Selected, input.SetName)
	} else {
		group.Selected = removeString(group.Selected, input.SetName)
	}

	state.LastToggle = s.now()

	return &ToggleResult{
		State:     state,
		Selected:  selected,
		Aggregate: state.Aggregate(),
	}, nil
}

func (s *service) Close(sessionID, userID string) (*entities.SelectionState, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if userID != "" && userID != sess.state.OwnerID {
		sess.mu.Unlock()
		return nil, clerr.Unauthorized("only the session owner may dismiss it")
	}
	sess.state.Closed = true
	state := sess.state
	sess.mu.Unlock()

	sess.cancel()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return state, nil
}

func (s *service) SetGroupMessageID(sessionID string, groupIndex int, messageID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if groupIndex < 0 || groupIndex >= len(sess.state.Groups) {
		return clerr.BadArgumentsf("no Pokemon at index %d", groupIndex)
	}
	sess.state.Groups[groupIndex].MessageID = messageID
	return nil
}

func (s *service) SetAggregateMessageID(sessionID, messageID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state.AggregateMessageID = messageID
	return nil
}

func (s *service) Random(ctx context.Context, count int) (string, error) {
	if count < 1 {
		count = 1
	}
	if count > maxRandomCount {
		return "", clerr.BadArgumentsf("count must be between 1 and %d", maxRandomCount)
	}

	blocks := make([]string, count)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			block, err := s.randomBlock(gctx)
			if err != nil {
				return err
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(blocks, "\n\n"), nil
}

// randomBlock samples one fully concrete set.
func (s *service) randomBlock(ctx context.Context) (string, error) {
	pokemon := randomPool[s.random.Intn(len(randomPool))]

	generation, err := s.catalog.RandomGeneration(ctx, pokemon)
	if err != nil {
		return "", err
	}

	format, err := s.catalog.RandomFormat(ctx, pokemon, generation)
	if err != nil {
		return "", err
	}

	setName, err := s.catalog.RandomSetName(ctx, pokemon, generation, format)
	if err != nil {
		return "", err
	}

	record, err := s.catalog.Moveset(ctx, pokemon, generation, format, setName)
	if err != nil {
		return "", err
	}

	return s.formatter.FormatRandom(record), nil
}

func (s *service) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stopJanitor)
	})

	s.mu.Lock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		sess.state.Closed = true
		sess.mu.Unlock()
		sess.cancel()
		delete(s.sessions, id)
	}
	s.mu.Unlock()
}

func (s *service) lookup(sessionID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, clerr.NotFound("session expired")
	}
	return sess, nil
}

// janitor sweeps idle sessions until Shutdown.
func (s *service) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopJanitor:
			return
		case <-ticker.C:
			s.expireIdle()
		}
	}
}

func (s *service) expireIdle() {
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.state.LastToggle.Before(cutoff)
		if idle {
			sess.state.Closed = true
		}
		sess.mu.Unlock()

		if idle {
			sess.cancel()
			delete(s.sessions, id)
		}
	}
}

// Slugify lowercases a Pokemon name and hyphenates its spaces, the form the
// catalog URL scheme expects.
func Slugify(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.ReplaceAll(name, " ", "-")
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func removeString(list []string, target string) []string {
	out := list[:0]
	for _, s := range list {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
