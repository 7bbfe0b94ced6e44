package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bistro/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, jsonMode)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output in JSON format")
	return cmd
}

func (a *app) runShow(cmd *cobra.Command, jsonMode bool) error {
	e, _, err := a.openExtent()
	if err != nil {
		return err
	}
	path := e.Path()
	if err := e.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no extent at %s; run bistro init or bistro demo first", path)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonMode {
		data, err := json.MarshalIndent(viewRestaurants(e.All()), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	if e.Len() == 0 {
		fmt.Fprintln(out, "No restaurants saved.")
		return nil
	}
	writeSummary(out, e.All())
	return nil
}

// writeSummary prints restaurants as an indented outline.
func writeSummary(w io.Writer, restaurants []*types.Restaurant) {
	for _, r := range restaurants {
		fmt.Fprintf(w, "%s (capacity %d, %d seats at %d tables)\n", r.Name(), r.MaxCapacity(), r.SeatCount(), r.NumberOfTables())
		for _, t := range r.Tables() {
			fmt.Fprintf(w, "  Table %d: %d seats, %s\n", t.Number(), t.Seats(), t.Type())
			for _, res := range t.Reservations() {
				fmt.Fprintf(w, "    %s  party of %d  %s\n", types.FormatDate(res.Date()), res.PartySize(), res.Status())
			}
		}
		for _, m := range r.Menus() {
			fmt.Fprintf(w, "  Menu %q (%s; %s)\n", m.Name(), m.Type(), strings.Join(m.Languages(), ", "))
			for _, d := range m.Dishes() {
				fmt.Fprintf(w, "    %-20s %8s  %s%s\n", d.Name(), d.Price().StringFixed(2), d.Cuisine(), dietLabel(d))
			}
		}
	}
}

func dietLabel(d *types.Dish) string {
	switch {
	case d.Vegan():
		return "  vegan"
	case d.Vegetarian():
		return "  vegetarian"
	}
	return ""
}

// JSON output shapes for show --json.
type (
	restaurantView struct {
		Name        string      `json:"name"`
		MaxCapacity int         `json:"max_capacity"`
		SeatCount   int         `json:"seat_count"`
		Tables      []tableView `json:"tables"`
		Menus       []menuView  `json:"menus"`
	}

	tableView struct {
		Number       int               `json:"number"`
		Seats        int               `json:"seats"`
		Type         string            `json:"type"`
		Reservations []reservationView `json:"reservations"`
	}

	reservationView struct {
		ID         string `json:"id"`
		Date       string `json:"date"`
		PartySize  int    `json:"party_size"`
		Status     string `json:"status"`
		CustomerID string `json:"customer_id,omitempty"`
	}

	menuView struct {
		Name      string     `json:"name"`
		Type      string     `json:"type"`
		Languages []string   `json:"languages"`
		Dishes    []dishView `json:"dishes"`
	}

	dishView struct {
		Name        string   `json:"name"`
		Cuisine     string   `json:"cuisine"`
		Price       string   `json:"price"`
		Vegetarian  bool     `json:"vegetarian"`
		Vegan       bool     `json:"vegan"`
		Ingredients []string `json:"ingredients"`
	}
)

func viewRestaurants(restaurants []*types.Restaurant) []restaurantView {
	out := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		rv := restaurantView{
			Name:        r.Name(),
			MaxCapacity: r.MaxCapacity(),
			SeatCount:   r.SeatCount(),
			Tables:      []tableView{},
			Menus:       []menuView{},
		}
		for _, t := range r.Tables() {
			tv := tableView{Number: t.Number(), Seats: t.Seats(), Type: t.Type(), Reservations: []reservationView{}}
			for _, res := range t.Reservations() {
				tv.Reservations = append(tv.Reservations, reservationView{
					ID:         res.ID(),
					Date:       types.FormatDate(res.Date()),
					PartySize:  res.PartySize(),
					Status:     string(res.Status()),
					CustomerID: res.CustomerID(),
				})
			}
			rv.Tables = append(rv.Tables, tv)
		}
		for _, m := range r.Menus() {
			mv := menuView{Name: m.Name(), Type: m.Type(), Languages: m.Languages(), Dishes: []dishView{}}
			for _, d := range m.Dishes() {
				mv.Dishes = append(mv.Dishes, dishView{
					Name:        d.Name(),
					Cuisine:     d.Cuisine(),
					Price:       d.Price().StringFixed(2),
					Vegetarian:  d.Vegetarian(),
					Vegan:       d.Vegan(),
					Ingredients: d.Ingredients(),
				})
			}
			rv.Menus = append(rv.Menus, mv)
		}
		out = append(out, rv)
	}
	return out
}
