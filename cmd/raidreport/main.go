// raidreport prints the encounter leaderboard (and optionally one encounter's
// player breakdown) from a saved guild-raid JSON payload. Useful for poking
// at a season export without a running server.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

func main() {
	var (
		file   = flag.String("file", "-", "guild-raid JSON payload, - for stdin")
		boss   = flag.String("boss", "", "boss type for a player breakdown")
		rarity = flag.String("rarity", "", "rarity for a player breakdown")
		set    = flag.Int("set", 0, "set number for a player breakdown")
	)
	flag.Parse()

	var in io.Reader = os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var resp models.RaidResponse
	if err := json.NewDecoder(in).Decode(&resp); err != nil {
		fmt.Fprintln(os.Stderr, "decode payload:", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	if *boss != "" {
		key := models.EncounterKey{BossType: *boss, Rarity: models.ParseRarity(*rarity), Set: *set}
		players := raid.Players(raid.FilterEncounter(resp.Entries, key), nil)

		fmt.Fprintf(w, "PLAYER\tTOTAL\tATTACKS\tAVG\tMIN\tMAX\n")
		for _, p := range players {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%d\t%d\n",
				p.UserID, p.TotalDamage, p.AttackCount, p.AvgDamage, p.MinDamage, p.MaxDamage)
		}
		w.Flush()
		return
	}

	fmt.Fprintf(w, "BOSS\tRARITY\tSET\tTOTAL\tTIERS\tAVG\tSTDDEV\tMIN\tMAX\n")
	for _, s := range raid.Encounters(resp.Entries) {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\t%.1f\t%d\t%d\n",
			s.Name, s.Rarity, s.Set, s.TotalDamage, s.TierCount,
			s.AvgDamage, s.StddevDamage, s.MinDamage, s.MaxDamage)
	}
	w.Flush()
}
