package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"truco-lite/card"
	"truco-lite/history"
	"truco-lite/truco"
	"truco-lite/truco/npc"
)

var errQuit = errors.New("quit")

func main() {
	_ = godotenv.Load()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Tru", pterm.FgGreen.ToStyle()),
		putils.LettersFromStringWithStyle("co", pterm.FgLightWhite.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	cfg := truco.Config{
		TargetScore: envIntOrDefault("TRUCO_TARGET_SCORE", truco.DefaultTargetScore),
		Seed:        int64(envIntOrDefault("TRUCO_SEED", 0)),
	}

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("You").Show()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "You"
	}
	pterm.Println()

	persona := npc.DefaultPersona()
	brain := npc.NewRuleBrain(persona, time.Now().UnixNano())

	var store *history.Store
	var oracle truco.Oracle = brain
	if s, err := history.OpenFromEnv(); err != nil {
		logger.Warn("history store unavailable, bot plays by rules only", "err", err)
	} else {
		store = s
		defer store.Close()
		if strings.ToLower(strings.TrimSpace(os.Getenv("TRUCO_BOT"))) != "rule" {
			spinner, _ := pterm.DefaultSpinner.Start("loading past deals")
			records, err := store.LoadRecords(context.Background(), 5000)
			switch {
			case err != nil:
				spinner.Fail("could not load past deals")
				logger.Warn("case oracle disabled", "err", err)
			default:
				spinner.Success(fmt.Sprintf("%d past deals loaded", len(records)))
				oracle = npc.NewCaseBrain(envIntOrDefault("TRUCO_KNN_K", 5), records, brain)
			}
		}
	}

	human := truco.NewPlayer(1, name, false)
	bot := truco.NewPlayer(2, persona.Name, true)
	deps := truco.Deps{Oracle: oracle, Input: termInput{}, Display: termDisplay{}}

	game, err := truco.NewGame(cfg, human, bot, deps)
	if err != nil {
		logger.Error("cannot start match", "err", err)
		os.Exit(1)
	}

	r := &runner{game: game, human: human, bot: bot, brain: brain, store: store, logger: logger}
	r.run()
}

type runner struct {
	game   *truco.Game
	human  *truco.Player
	bot    *truco.Player
	brain  *npc.RuleBrain
	store  *history.Store
	logger *slog.Logger

	foldWinner int
}

func (r *runner) run() {
	for r.game.MatchWinner() == nil {
		if err := r.playDeal(); err != nil {
			if errors.Is(err, errQuit) {
				pterm.Info.Println("match abandoned")
				return
			}
			r.logger.Error("deal failed", "err", err)
			return
		}
	}
	w := r.game.MatchWinner()
	pterm.DefaultSection.Println("Match over")
	renderScore(r.game.Snapshot())
	pterm.Success.Printfln("%s wins the match", w.Name)
}

func (r *runner) playDeal() error {
	g := r.game
	if err := g.StartDeal(); err != nil {
		return err
	}
	r.foldWinner = 0
	maoID := 1
	if r.bot.Mao() {
		maoID = 2
	}
	quality1 := truco.HandQuality(r.human.Hand())
	quality2 := truco.HandQuality(r.bot.Hand())

	renderScore(g.Snapshot())

	handEnded := false
	for !handEnded && g.HandWinner() == nil && len(g.TrickResults()) < 3 {
		played := map[int]card.Card{}
		first, second := r.leadOrder()
		for _, p := range []*truco.Player{first, second} {
			c, ended, err := r.takeTurn(p, played)
			if err != nil {
				return err
			}
			if ended {
				handEnded = true
				break
			}
			played[p.ID] = c
		}
		if handEnded {
			break
		}
		res, err := g.RankTrick(played[r.human.ID], played[r.bot.ID])
		if err != nil {
			return err
		}
		if err := g.RecordTrick(res); err != nil {
			return err
		}
	}

	if !handEnded {
		// Three tricks always decide a hand under the parda rules.
		if _, err := g.SettleHand(); err != nil {
			return err
		}
	}
	r.appendRecord(maoID, quality1, quality2)
	return nil
}

func (r *runner) leadOrder() (*truco.Player, *truco.Player) {
	if r.game.LeadID() == r.bot.ID {
		return r.bot, r.human
	}
	return r.human, r.bot
}

func (r *runner) takeTurn(p *truco.Player, played map[int]card.Card) (card.Card, bool, error) {
	opp := card.CardInvalid
	if p.ID == r.human.ID {
		if c, ok := played[r.bot.ID]; ok {
			opp = c
		}
		return r.humanTurn(opp)
	}
	if c, ok := played[r.human.ID]; ok {
		opp = c
	}
	return r.botTurn(opp)
}

func (r *runner) botTurn(opp card.Card) (card.Card, bool, error) {
	g := r.game

	// Openings are only legal while no card has been shown.
	if len(r.bot.Hand()) == 3 && len(r.human.Hand()) == 3 {
		if r.bot.HasFlor() && !g.Flor().Announced() {
			if _, err := g.Flor().Announce(r.bot.ID, r.human, r.bot); err != nil {
				if !isInvalidInput(err) {
					return card.CardInvalid, false, err
				}
				pterm.Warning.Println("invalid answer, the flor stands unanswered")
			}
		} else if g.Envido().Current() == truco.EnvidoNone && !g.Flor().Announced() {
			if kind, ok := r.brain.ShouldOpenEnvido(r.bot.EnvidoPoints()); ok {
				out, err := g.Envido().Request(kind, r.bot.ID, r.human, r.bot)
				if err != nil {
					if !isInvalidInput(err) {
						return card.CardInvalid, false, err
					}
					pterm.Warning.Println("invalid answer, the envido is off")
				}
				if out == truco.OutcomeFlor {
					// The human countered with flor.
					if _, err := g.Flor().Announce(r.human.ID, r.human, r.bot); err != nil && !isInvalidInput(err) {
						return card.CardInvalid, false, err
					}
				}
			}
		}
	}

	if r.brain.ShouldOpenTruco(truco.HandQuality(r.bot.Hand()), r.bot.CalledTruco()) {
		out, err := g.Truco().Request(g.Truco().Stage()+1, r.bot, r.human)
		if err != nil {
			if !isInvalidInput(err) {
				return card.CardInvalid, false, err
			}
			pterm.Warning.Println("invalid answer, the call is off")
		}
		if out == truco.OutcomeDeclined {
			return card.CardInvalid, true, nil
		}
	}

	idx, err := npc.ChooseCard(r.bot.Hand(), opp)
	if err != nil {
		return card.CardInvalid, false, err
	}
	c, err := r.bot.PlayCard(idx)
	if err != nil {
		return card.CardInvalid, false, err
	}
	r.game.NoteCardPlayed(r.bot.ID)
	pterm.Info.Printfln("%s plays %s", r.bot.Name, c)
	return c, false, nil
}

func (r *runner) humanTurn(opp card.Card) (card.Card, bool, error) {
	g := r.game
	const (
		optFold = "go to the deck (fold)"
		optQuit = "quit"
	)

	for {
		renderHand(r.human.Name, r.human.Hand())
		labels := cardLabels(r.human.Hand())
		options := append([]string{}, labels...)

		var optTruco string
		if g.Truco().Stage() < truco.TrucoValeQuatro {
			optTruco = "call " + truco.TrucoStageDictionary[g.Truco().Stage()+1]
			options = append(options, optTruco)
		}
		envidoOpen := g.Envido().Current() == truco.EnvidoNone && !g.Flor().Announced() &&
			len(r.human.Hand()) == 3 && len(r.bot.Hand()) == 3
		if envidoOpen {
			options = append(options, "call envido", "call real_envido", "call falta_envido")
		}
		florOpen := r.human.HasFlor() && !g.Flor().Announced() &&
			len(r.human.Hand()) == 3 && len(r.bot.Hand()) == 3
		if florOpen {
			options = append(options, "announce flor")
		}
		options = append(options, optFold, optQuit)

		sel, err := pterm.DefaultInteractiveSelect.WithDefaultText("your move").WithOptions(options).Show()
		if err != nil {
			return card.CardInvalid, false, err
		}

		switch sel {
		case optTruco:
			out, err := g.Truco().Request(g.Truco().Stage()+1, r.human, r.bot)
			if err != nil {
				return card.CardInvalid, false, err
			}
			if out == truco.OutcomeDeclined {
				return card.CardInvalid, true, nil
			}
			if out == truco.OutcomeNone {
				pterm.Warning.Println("truco is not available right now")
			}
			continue

		case "call envido", "call real_envido", "call falta_envido":
			kind := truco.EnvidoCall
			if sel == "call real_envido" {
				kind = truco.EnvidoReal
			} else if sel == "call falta_envido" {
				kind = truco.EnvidoFalta
			}
			out, err := g.Envido().Request(kind, r.human.ID, r.human, r.bot)
			if err != nil {
				return card.CardInvalid, false, err
			}
			if out == truco.OutcomeFlor {
				// The bot countered with flor.
				if _, err := g.Flor().Announce(r.bot.ID, r.human, r.bot); err != nil {
					return card.CardInvalid, false, err
				}
			}
			if out == truco.OutcomeNone {
				pterm.Warning.Println("envido is not available right now")
			}
			continue

		case "announce flor":
			if _, err := g.Flor().Announce(r.human.ID, r.human, r.bot); err != nil {
				return card.CardInvalid, false, err
			}
			continue

		case optFold:
			w, err := g.Fold(r.human.ID)
			if err != nil {
				return card.CardInvalid, false, err
			}
			r.foldWinner = w.ID
			return card.CardInvalid, true, nil

		case optQuit:
			return card.CardInvalid, false, errQuit
		}

		for idx, label := range labels {
			if label == sel {
				c, err := r.human.PlayCard(idx)
				if err != nil {
					return card.CardInvalid, false, err
				}
				r.game.NoteCardPlayed(r.human.ID)
				return c, false, nil
			}
		}
	}
}

func (r *runner) appendRecord(maoID int, quality1, quality2 float64) {
	if r.store == nil {
		return
	}
	g := r.game

	tricks := [3]int{}
	for i, t := range g.TrickResults() {
		if i >= len(tricks) {
			break
		}
		tricks[i] = int(t)
	}

	handWinner := 0
	switch {
	case g.HandWinner() != nil:
		handWinner = g.HandWinner().ID
	case g.Truco().WonBy() != 0:
		handWinner = g.Truco().WonBy()
	case r.foldWinner != 0:
		handWinner = r.foldWinner
	}

	rec := history.HandRecord{
		MatchID: g.ID.String(),
		DealNo:  g.DealNumber(),
		MaoID:   maoID,

		EnvidoKind:   int(g.Envido().Current()),
		EnvidoAsker:  g.Envido().Asker(),
		EnvidoWinner: g.Envido().WonBy(),
		EnvidoStake:  g.Envido().Stake(),
		Envido1:      r.human.EnvidoPoints(),
		Envido2:      r.bot.EnvidoPoints(),

		FlorStage:  int(g.Flor().Stage()),
		FlorWinner: g.Flor().WonBy(),
		FlorStake:  g.Flor().Stake(),

		TrucoStage:  int(g.Truco().Stage()),
		TrucoAsker:  g.Truco().LastRaiser(),
		TrucoStake:  g.Truco().Stake(),
		TrucoWinner: g.Truco().WonBy(),

		Trick1: tricks[0],
		Trick2: tricks[1],
		Trick3: tricks[2],

		HandWinner: handWinner,
		Quality1:   quality1,
		Quality2:   quality2,
		Score1:     r.human.Score(),
		Score2:     r.bot.Score(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.store.Append(ctx, rec); err != nil {
		r.logger.Warn("append deal record failed", "deal", rec.DealNo, "err", err)
	}
}

func isInvalidInput(err error) bool {
	var iie truco.InvalidInputError
	return errors.As(err, &iie)
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
