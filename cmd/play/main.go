package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"example.com/bc-solver/internal/game"
)

func main() {
	pool := flag.String("pool", game.PoolCandidates, "hint search pool: candidates|universe")
	opening := flag.String("opening", "0123", "canned first hint; empty disables the opening book")
	flag.Parse()

	sess, err := game.NewSession("local", game.Config{
		HintPool:     *pool,
		OpeningGuess: *opening,
	}, game.RandomSecret())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("=========================================")
	fmt.Println("   BULLS AND COWS: ENTROPY EDITION")
	fmt.Println("=========================================")
	fmt.Println("Rules: guess the 4-digit number (unique digits).")
	fmt.Println("Goal: drive the uncertainty down to 0 bits.")

	in := bufio.NewScanner(os.Stdin)

	for {
		st := sess.State()
		fmt.Printf("\n--- Turn %d ---\n", st.Turn)
		fmt.Printf("Current uncertainty: %.4f bits\n", st.UncertaintyBits)
		fmt.Printf("Remaining possible numbers: %d\n", st.Remaining)

		if ask(in, "Would you like an entropy-based hint? (y/n): ") {
			hint, err := sess.Hint("")
			if err != nil {
				fmt.Println("Error: no candidates remaining. Did you make a mistake?")
				os.Exit(1)
			}
			fmt.Printf("Recommended guess: %s (expected gain %.4f bits, %dms, pool=%s)\n",
				hint.Guess, hint.ExpectedBits, hint.ElapsedMs, hint.Pool)
		}

		fmt.Print("Enter your guess: ")
		if !in.Scan() {
			return
		}

		at, err := sess.Guess(strings.TrimSpace(in.Text()))
		if errors.Is(err, game.ErrInvalidNumber) {
			fmt.Println("Invalid input! Must be 4 unique digits.")
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("Result: %d Bulls, %d Cows\n", at.Bulls, at.Cows)

		if at.Bulls == 4 {
			fmt.Printf("\nCONGRATULATIONS! You found the secret %s.\n", at.Guess)
			fmt.Printf("Total guesses: %d\n", at.Turn)
			return
		}

		fmt.Printf("Information gained: %.4f bits\n", at.GainedBits)
	}
}

func ask(in *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !in.Scan() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "y")
}
