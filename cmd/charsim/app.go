package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/config"
	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/command"
	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/game/multiclass"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/game/session"
	"github.com/cory-johannsen/deadmud/internal/game/world"
	"github.com/cory-johannsen/deadmud/internal/storage"
	"github.com/cory-johannsen/deadmud/internal/storage/postgres"
	"github.com/cory-johannsen/deadmud/internal/storage/redis"
)

type options struct {
	Name  string
	Class string
	Race  string
	Sex   string
	Level int
	Seed  uint64
	Color bool
}

// run wires the game rules to a repository and plays one character from in
// until it quits or in is exhausted.
func run(ctx context.Context, cfg config.Config, opts options, in io.Reader, out io.Writer, logger *zap.Logger) error {
	start := time.Now()
	if opts.Name == "" {
		return errors.New("a character name is required")
	}

	reg, err := ruleset.LoadRegistry(cfg.Content.ClassesDir, cfg.Content.RacesDir)
	if err != nil {
		return fmt.Errorf("loading class content: %w", err)
	}
	worldMgr, err := world.Load(cfg.Content.ZonesDir)
	if err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}
	if err := worldMgr.SetGuildGuards(world.GuildGuards(reg)); err != nil {
		return fmt.Errorf("placing guild guards: %w", err)
	}
	logger.Info("content loaded",
		zap.Int("classes", len(reg.Classes())),
		zap.Int("zones", worldMgr.ZoneCount()),
		zap.Int("rooms", worldMgr.RoomCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	src := dice.NewCryptoSource()
	if opts.Seed != 0 {
		src = dice.NewSeededSource(opts.Seed)
	}
	sessions := session.NewManager()
	calc := character.NewCalculator(reg, logger)
	adv := character.NewAdvancer(calc, dice.NewLoggedRoller(src, logger), repo, sessions, logger).
		WithSaveTimeout(cfg.Storage.SaveTimeout)

	env := &command.Env{
		Rules:    reg,
		Advancer: adv,
		Multi:    multiclass.NewService(reg, multiclass.RulesFromConfig(cfg.Game.Multiclass), worldMgr, adv, logger),
		World:    worldMgr,
		Sessions: sessions,
		Commands: command.DefaultRegistry(),
		Palette:  command.Palette{Enabled: opts.Color},
		Logger:   logger,
	}

	ch, err := loadOrCreate(ctx, env, repo, opts)
	if err != nil {
		return err
	}
	advanceTo(ctx, adv, ch, opts.Level)

	if _, err := sessions.AddPlayer(ch); err != nil {
		return fmt.Errorf("entering the game: %w", err)
	}
	defer func() { _ = sessions.RemovePlayer(ch.Name) }()

	return repl(ctx, env, ch, in, out)
}

func openRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.CharacterRepository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		logger.Info("database connected", zap.String("host", cfg.Database.Host))
		return postgres.NewCharacterRepository(pool.DB()), pool.Close, nil
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		return redis.NewCharacterRepository(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
	}
	logger.Warn("persistence disabled; characters live only for this session")
	return storage.NewMemory(), func() {}, nil
}

// loadOrCreate loads the named character, or creates and starts a new one
// from the class, race and sex options.
func loadOrCreate(ctx context.Context, env *command.Env, repo storage.CharacterRepository, opts options) (*character.Character, error) {
	ch, err := repo.GetByName(ctx, opts.Name)
	switch {
	case err == nil:
		if _, ok := env.World.GetRoom(ch.Location); !ok {
			ch.Location = env.World.StartRoom().ID
		}
		env.Logger.Info("character loaded", zap.String("name", ch.Name), zap.Stringer("class", ch.Class), zap.Int("level", ch.Level))
		return ch, nil
	case !errors.Is(err, storage.ErrCharacterNotFound):
		return nil, fmt.Errorf("loading %q: %w", opts.Name, err)
	}

	class, ok := env.Rules.FindClassAbbrev(opts.Class)
	if !ok {
		return nil, fmt.Errorf("unknown class %q", opts.Class)
	}
	race, err := ruleset.ParseRaceID(opts.Race)
	if err != nil {
		return nil, err
	}
	sex, err := ruleset.ParseSex(opts.Sex)
	if err != nil {
		return nil, err
	}
	start := env.World.StartRoom()
	if start == nil {
		return nil, errors.New("the world has no start room")
	}

	ch = &character.Character{
		Name:     opts.Name,
		Sex:      sex,
		Class:    class,
		Race:     race,
		Location: start.ID,
	}
	if err := repo.Create(ctx, ch); err != nil {
		return nil, fmt.Errorf("creating %q: %w", opts.Name, err)
	}
	if err := env.Advancer.Start(ctx, ch); err != nil {
		return nil, err
	}
	env.Logger.Info("character created",
		zap.String("name", ch.Name),
		zap.Stringer("uid", ch.UID),
		zap.Stringer("class", ch.Class),
		zap.Stringer("race", ch.Race),
	)
	return ch, nil
}

// advanceTo raises ch to level. Mortal levels are earned through experience;
// immortal levels are granted one at a time.
func advanceTo(ctx context.Context, adv *character.Advancer, ch *character.Character, level int) {
	if level > ruleset.LevelImplementor {
		level = ruleset.LevelImplementor
	}
	if level <= ch.Level {
		return
	}
	mortal := min(level, ruleset.LevelImmortal-1)
	if need := adv.Calculator().ExperienceRequired(ch.Class, mortal) - ch.Experience; need > 0 {
		adv.GainExperience(ctx, ch, need)
	}
	for ch.Level < level {
		ch.Level++
		ch.TotalLevel++
		adv.AdvanceLevel(ctx, ch)
	}
	adv.SetTitle(ch)
	adv.Save(ctx, ch)
}

func repl(ctx context.Context, env *command.Env, ch *character.Character, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, command.HandleLook(env, ch)+"\r\n")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\r\n< %dH %dM %dV > ", ch.Points.Hit, ch.Points.Mana, ch.Points.Move)
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			break
		}
		res := env.Dispatch(ctx, ch, scanner.Text())
		if res.Output != "" {
			fmt.Fprint(out, res.Output+"\r\n")
		}
		if res.Quit {
			return nil
		}
	}
	env.Advancer.Save(context.WithoutCancel(ctx), ch)
	return scanner.Err()
}
