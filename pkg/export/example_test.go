package export_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/arcraiders/pkg/export"
)

func ExampleWriteCSV() {
	type stats struct {
		Damage float64 `json:"damage"`
	}
	type weapon struct {
		ID    string   `json:"id"`
		Name  string   `json:"name"`
		Tags  []string `json:"tags"`
		Stats stats    `json:"stats"`
	}

	records := []weapon{
		{ID: "anvil", Name: "Anvil, Mk. II", Tags: []string{"pistol"}, Stats: stats{Damage: 40}},
	}
	if err := export.WriteCSV(os.Stdout, records, export.Options{}); err != nil {
		fmt.Println(err)
	}
	// Output:
	// id,name,tags,stats.damage
	// anvil,"Anvil, Mk. II","[""pistol""]",40
}
