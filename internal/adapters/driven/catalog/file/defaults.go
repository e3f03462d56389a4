package file

import "github.com/homecrew-labs/homecrew-cli/internal/core/domain"

// defaultWorks is the embedded fallback catalog: ten work items across the
// house, garden and laundry categories.
func defaultWorks() []domain.Work {
	return []domain.Work{
		{ID: 1, Name: "Window Cleaning", Category: "house", TimeMinutes: 80, Price: 600},
		{ID: 2, Name: "Mopping", Category: "house", TimeMinutes: 40, Price: 300},
		{ID: 3, Name: "Sweeping", Category: "house", TimeMinutes: 30, Price: 200},
		{ID: 4, Name: "Fan Cleaning", Category: "house", TimeMinutes: 40, Price: 400},
		{ID: 5, Name: "Bathroom Cleaning", Category: "house", TimeMinutes: 60, Price: 500},
		{ID: 6, Name: "Mowing", Category: "garden", TimeMinutes: 80, Price: 700},
		{ID: 7, Name: "Pruning", Category: "garden", TimeMinutes: 120, Price: 900},
		{ID: 8, Name: "Washing", Category: "laundry", TimeMinutes: 40, Price: 300},
		{ID: 9, Name: "Drying", Category: "laundry", TimeMinutes: 30, Price: 200},
		{ID: 10, Name: "Ironing", Category: "laundry", TimeMinutes: 40, Price: 200},
	}
}

// defaultPackages is the embedded fallback set of bundles.
func defaultPackages() []domain.Package {
	return []domain.Package{
		{ID: 1, Name: "House Cleaning", Description: "Complete house cleaning", WorkIDs: []int{1, 2, 3, 4, 5}},
		{ID: 2, Name: "Garden Cleaning", Description: "Garden maintenance", WorkIDs: []int{6, 7}},
		{ID: 3, Name: "Laundry", Description: "Complete laundry services", WorkIDs: []int{8, 9, 10}},
	}
}
