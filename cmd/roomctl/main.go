// Command roomctl is a terminal client for the roomcraft backend.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"roomcraft/internal/domain"
	"roomcraft/internal/orderclient"
	"roomcraft/internal/service"
)

func main() {
	app := &cli.App{
		Name:  "roomctl",
		Usage: "browse the furniture catalog and manage orders",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:9091", EnvVars: []string{"ROOMCRAFT_SERVER"}, Usage: "backend base URL"},
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second},
		},
		Commands: []*cli.Command{
			{
				Name:   "categories",
				Usage:  "list furniture categories",
				Action: listCategories,
			},
			{
				Name:  "furniture",
				Usage: "list furniture templates with base prices",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}},
				},
				Action: listFurniture,
			},
			{
				Name:  "quote",
				Usage: "price a configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Required: true},
					&cli.Float64Flag{Name: "width", Usage: "cm"},
					&cli.Float64Flag{Name: "length", Usage: "cm"},
					&cli.Float64Flag{Name: "height", Usage: "cm"},
					&cli.StringFlag{Name: "material", Usage: "material id"},
					&cli.StringFlag{Name: "color", Usage: "color name"},
					&cli.BoolFlag{Name: "corner"},
					&cli.Float64Flag{Name: "corner-length", Usage: "cm"},
				},
				Action: quote,
			},
			{
				Name:  "orders",
				Usage: "inspect and update orders",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Action: listOrders,
					},
					{
						Name:      "status",
						Usage:     "change the status of an order",
						ArgsUsage: "<order-id> <status>",
						Action:    setStatus,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func client(c *cli.Context) *orderclient.Client {
	return orderclient.New(c.String("server"), c.Duration("timeout"), nil)
}

func listCategories(c *cli.Context) error {
	cats, err := client(c).Categories(c.Context)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		fmt.Println(cat)
	}
	return nil
}

func listFurniture(c *cli.Context) error {
	list, err := client(c).ListFurniture(c.Context, domain.Category(c.String("category")))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCORNER\tFROM")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%.0f\n", t.ID, t.Name, t.Category, t.CanBeCorner(), t.BasePrice)
	}
	return w.Flush()
}

func quote(c *cli.Context) error {
	b, err := client(c).Quote(c.Context, service.QuoteRequest{
		TemplateID:   c.String("template"),
		Width:        c.Float64("width"),
		Length:       c.Float64("length"),
		Height:       c.Float64("height"),
		MaterialID:   c.String("material"),
		Color:        c.String("color"),
		Corner:       c.Bool("corner") || c.IsSet("corner-length"),
		CornerLength: c.Float64("corner-length"),
	})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WING\tPANEL\tWIDTH\tLENGTH\tAREA\tCOST")
	for _, p := range b.Panels {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.4f\t%.2f\n", p.Wing, p.Name, p.Width, p.Length, p.Area, p.Cost)
	}
	fmt.Fprintf(w, "\t\t\t\tmaterials\t%.2f\n", b.MaterialCost)
	fmt.Fprintf(w, "\t\t\t\tlabor\t%.2f\n", b.Labor)
	fmt.Fprintf(w, "\t\t\t\ttotal\t%.0f\n", b.Total)
	return w.Flush()
}

func listOrders(c *cli.Context) error {
	orders, err := client(c).ListOrders(c.Context)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\n", o.ID, o.Date, o.Status, len(o.Items), o.TotalPrice)
	}
	return w.Flush()
}

func setStatus(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: roomctl orders status <order-id> <status>", 2)
	}
	status, err := domain.ParseOrderStatus(c.Args().Get(1))
	if err != nil {
		return err
	}
	o, err := client(c).UpdateOrderStatus(c.Context, c.Args().Get(0), status)
	if err != nil {
		return err
	}
	return json.NewEncoder(os.Stdout).Encode(o)
}
