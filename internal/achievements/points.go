package achievements

// TotalPoints sums the reward points of the user's earned achievements. An
// award referencing an id no longer in the catalog (a retired achievement)
// contributes zero instead of failing.
func TotalPoints(catalog *Catalog, userID string) (int, error) {
	records, err := ListEarned(userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, r := range records {
		if def, ok := catalog.Find(r.AchievementID); ok {
			total += def.RewardPoints
		}
	}
	return total, nil
}
