package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/rokudoku/stats"
)

var errBadLogFile = errors.New("not an autoplay turn log")

// AnalyzeLogFile reads a turn log written by Play and summarizes the final
// score of every episode in it.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return analyzeLog(file)
}

func analyzeLog(in io.Reader) (string, error) {
	r := csv.NewReader(in)

	// Record looks like:
	// episode,turn,bricks,play,score,totalscore,units,streak,filled
	final := map[int]int{}
	var order []int
	movesPlayed := 0
	sawHeader := false
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "episode" {
			sawHeader = true
			continue
		}
		if !sawHeader || len(record) < 6 {
			return "", errBadLogFile
		}
		episode, err := strconv.Atoi(record[0])
		if err != nil {
			return "", err
		}
		total, err := strconv.Atoi(record[5])
		if err != nil {
			return "", err
		}
		if _, ok := final[episode]; !ok {
			order = append(order, episode)
		}
		final[episode] = total
		movesPlayed++
	}

	scores := make([]int, len(order))
	for i, ep := range order {
		scores[i] = final[ep]
	}

	s := fmt.Sprintf("Episodes played: %d\n", len(scores))
	s += fmt.Sprintf("Moves played: %d\n", movesPlayed)
	s += stats.Summarize(scores).String() + "\n"
	return s, nil
}
