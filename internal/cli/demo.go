package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bistro/internal/receipt"
	"github.com/mesh-intelligence/bistro/pkg/extent"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

// now is replaced in tests.
var now = time.Now

func newDemoCmd(a *app) *cobra.Command {
	var receiptPath string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample restaurant scenario and save it",
		Long: "Build the sample restaurant, book a table, place and complete an order,\n" +
			"redeem member credits and pay. The extent is then saved, loaded back\n" +
			"and printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd, receiptPath)
		},
	}
	cmd.Flags().StringVar(&receiptPath, "receipt", "", "write a QR code receipt for the payment to this PNG file")
	return cmd
}

// demoRun is the state left behind by the sample scenario.
type demoRun struct {
	manager    *types.Manager
	waiter     *types.Waiter
	restaurant *types.Restaurant
	member     *types.Member
	order      *types.Order
	payment    *types.Payment
}

func (a *app) runDemo(cmd *cobra.Command, receiptPath string) error {
	e, _, err := a.openExtent()
	if err != nil {
		return err
	}
	run, err := runScenario(e, types.DateOf(now()))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Manager on duty: %s\n", run.manager.FullName())
	fmt.Fprintf(out, "Waiter %s serves %d table(s)\n", run.waiter.FullName(), len(run.waiter.AssignedTables()))
	fmt.Fprintf(out, "Order total: %s\n", run.order.TotalAmount().StringFixed(2))
	fmt.Fprintf(out, "Processed payment amount: %s\n", run.payment.Amount().StringFixed(2))
	fmt.Fprintf(out, "Total with tax: %s\n", run.payment.TotalWithTax().StringFixed(2))

	if receiptPath != "" {
		if err := (receipt.Generator{}).WriteFile(run.payment, receiptPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Receipt written to %s\n", receiptPath)
	}

	path := e.Path()
	if err := e.Save(path); err != nil {
		return err
	}
	e.Clear()
	if err := e.Load(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved and reloaded %d restaurant(s) from %s\n\n", e.Len(), path)
	writeSummary(out, e.All())
	return nil
}

// runScenario registers the sample restaurant with e and walks one member
// from reservation to payment. The reservation is for the day after today.
func runScenario(e *extent.Extent, today time.Time) (*demoRun, error) {
	work, err := types.NewWorkDetails("Dining", "Evening", today.AddDate(-2, 0, 0))
	if err != nil {
		return nil, err
	}
	profile, err := types.NewExperiencedProfile(5, "Chef Gomez")
	if err != nil {
		return nil, err
	}
	managerPerson, err := types.NewPerson("Mustafa", "Atalan", types.Date(2002, 5, 14), "555-0001")
	if err != nil {
		return nil, err
	}
	managerEmployee, err := types.NewEmployee(managerPerson, work, profile)
	if err != nil {
		return nil, err
	}
	manager, err := types.NewManager(managerEmployee, 2)
	if err != nil {
		return nil, err
	}

	restaurant, err := e.NewRestaurant("BYT Bistro", 120)
	if err != nil {
		return nil, err
	}
	menu, err := types.NewMenu("Main Menu", "Dinner", []string{"English", "Turkish"})
	if err != nil {
		return nil, err
	}
	margherita, err := types.NewDish("Margherita Pizza", "Italian", true, false,
		decimal.RequireFromString("14.50"), []string{"Dough", "Tomato", "Mozzarella", "Basil"})
	if err != nil {
		return nil, err
	}
	steak, err := types.NewDish("Grilled Steak", "American", false, false,
		decimal.RequireFromString("28.00"), []string{"Beef", "Salt", "Pepper"})
	if err != nil {
		return nil, err
	}
	for _, d := range []*types.Dish{margherita, steak} {
		if _, err := menu.AddDish(d); err != nil {
			return nil, err
		}
	}
	if err := restaurant.AddMenu(menu); err != nil {
		return nil, err
	}

	table1, err := types.NewTable(1, 4, "Standard")
	if err != nil {
		return nil, err
	}
	table2, err := types.NewTable(2, 2, "Window")
	if err != nil {
		return nil, err
	}
	for _, t := range []*types.Table{table1, table2} {
		if err := restaurant.AddTable(t); err != nil {
			return nil, err
		}
	}

	waiterPerson, err := types.NewPerson("Ayse", "Kaya", types.Date(1998, 9, 2), "555-0002")
	if err != nil {
		return nil, err
	}
	trainee, err := types.NewTraineeProfile(6)
	if err != nil {
		return nil, err
	}
	waiterEmployee, err := types.NewEmployee(waiterPerson, work, trainee)
	if err != nil {
		return nil, err
	}
	waiter := types.NewWaiter(waiterEmployee)
	if _, err := manager.AssignTable(waiter, table1); err != nil {
		return nil, err
	}

	customerPerson, err := types.NewPerson("Berkay", "Bayar", types.Date(1999, 3, 12), "555-2222")
	if err != nil {
		return nil, err
	}
	member, err := types.NewMember(customerPerson, "berkay@example.com", 5, decimal.RequireFromString("2.5"))
	if err != nil {
		return nil, err
	}
	reservation, err := types.NewReservation(types.NewID(), today.AddDate(0, 0, 1), 2)
	if err != nil {
		return nil, err
	}
	booked, err := table1.Reserve(member, reservation)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, fmt.Errorf("table %d is already booked on %s", table1.Number(), types.FormatDate(reservation.Date()))
	}
	if err := reservation.Confirm(); err != nil {
		return nil, err
	}

	margheritaLine, err := types.NewOrderLine("Margherita Order", margherita, 2)
	if err != nil {
		return nil, err
	}
	steakLine, err := types.NewOrderLine("Steak Order", steak, 1)
	if err != nil {
		return nil, err
	}
	order, err := member.PlaceOrder(table1, []*types.OrderLine{margheritaLine, steakLine})
	if err != nil {
		return nil, err
	}
	if err := order.CompleteOrder(); err != nil {
		return nil, err
	}
	member.AddOrderCredit()

	discounted := member.UseCredits(order.TotalAmount())
	payment, err := member.MakePayment(order, types.MethodCard, discounted)
	if err != nil {
		return nil, err
	}

	return &demoRun{
		manager:    manager,
		waiter:     waiter,
		restaurant: restaurant,
		member:     member,
		order:      order,
		payment:    payment,
	}, nil
}
