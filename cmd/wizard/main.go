// Terminal client for the prediction wizard. Drives the same state machine
// the web flow uses, over the live HTTP API.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"babyshower_backend/internal/config"
	"babyshower_backend/internal/wizard"

	"github.com/dustin/go-humanize"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the prediction API")
	minimal := flag.Bool("minimal", false, "run the minimal flow (no captcha, no review, fixed bet)")
	flag.Parse()

	cfg := config.LoadConfig()
	machine := wizard.New(wizard.NewHTTPBackend(*baseURL, nil), wizard.Config{
		Captcha:         !*minimal,
		Review:          !*minimal,
		CaptchaPhrase:   cfg.CaptchaPhrase,
		ExpectedDueDate: cfg.ExpectedDueDate,
		Effect: func(g wizard.Gender, colors [2]string) {
			fmt.Printf("🎉 Confetti! (%s / %s)\n", colors[0], colors[1])
		},
	})

	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("👶 Baby Mehta Gen 4.0 — prediction wizard")
	if count, err := preorderCount(*baseURL); err == nil {
		fmt.Printf("You'd be the %s well-wisher to pre-order!\n", humanize.Ordinal(count+1))
	}

	for machine.Step() != wizard.StepSubmitted {
		var err error
		switch machine.Step() {
		case wizard.StepJoin:
			name := prompt(in, "Your name: ")
			relation := prompt(in, "Relation to baby: ")
			err = machine.Join(ctx, name, relation)
		case wizard.StepCaptcha:
			code := prompt(in, "Prove you're human — what does the baby say? ")
			err = machine.EnterCaptcha(code)
		case wizard.StepGender:
			choice := strings.ToLower(prompt(in, "Boy or girl? "))
			err = machine.SelectGender(wizard.Gender(choice))
		case wizard.StepWeight:
			fmt.Printf("Current guess: %s\n", wizard.FormatWeightKg(machine.WeightKg()))
			raw := prompt(in, fmt.Sprintf("Weight in kg (%.1f-%.1f, enter to keep): ", wizard.MinWeightKg, wizard.MaxWeightKg))
			if raw != "" {
				var kg float64
				if kg, err = strconv.ParseFloat(raw, 64); err == nil {
					err = machine.SetWeight(kg)
				}
			}
			if err == nil {
				fmt.Printf("Locked in: %s\n", wizard.FormatWeightKg(machine.WeightKg()))
				err = machine.LockWeight()
			}
		case wizard.StepDate:
			raw := prompt(in, "Due date (YYYY-MM-DD): ")
			var d time.Time
			if d, err = time.Parse("2006-01-02", raw); err == nil {
				err = machine.SelectDueDate(ctx, d)
			}
		case wizard.StepReview:
			fmt.Printf("Total bet: ₹%d. Submit? This cannot be undone.\n", machine.TotalBet())
			if strings.ToLower(prompt(in, "Type 'yes' to confirm: ")) != "yes" {
				continue
			}
			if err = machine.Confirm(); err == nil {
				err = machine.Submit(ctx)
			}
		}
		if err != nil {
			fmt.Println("⚠️ ", err)
		}
	}

	fmt.Printf("All done, %s! Your prediction is locked in — may the best predictor win!\n", machine.Name())
}

// prompt reads one trimmed line from stdin
func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

// preorderCount fetches the current pre-order tally
func preorderCount(baseURL string) (int, error) {
	res, err := http.Get(strings.TrimRight(baseURL, "/") + "/api/preorder")
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Count, nil
}
