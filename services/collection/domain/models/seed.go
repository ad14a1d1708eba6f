package models

import "time"

const unsplashParams = "?auto=format&fit=crop&q=80&w=800"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + unsplashParams
}

// SeedSeries returns the default series installed on first run.
func SeedSeries() []Series {
	mk := func(id, name, photo string) Series {
		return Series{
			ID:           id,
			Name:         name,
			CoverImage:   unsplash(photo),
			TotalRegular: DefaultTotalRegular,
			TotalSecret:  DefaultTotalSecret,
		}
	}
	return []Series{
		mk("s1", "DIMOO 水族館系列", "photo-1513035068991-537c355c3c0d"),
		mk("s2", "DIMOO 森林之夜", "photo-1448375240586-dfd8d395ea6c"),
		mk("s3", "DIMOO 星座系列", "photo-1419242902214-272b3f66ee7a"),
		mk("s4", "DIMOO 侏羅紀", "photo-1606138673479-7098418728a5"),
		mk("s5", "DIMOO 寵物度假", "photo-1581888227599-779811939961"),
	}
}

// SeedItems returns the default items installed on first run, each with a fresh ID
// and acquired at now.
func SeedItems(now time.Time) []Item {
	fields := []ItemFields{
		{SeriesID: "s1", Name: "北極熊潛水員", Description: "頭上戴著北極熊帽子的潛水員。", ImageURL: unsplash("photo-1576618148400-f54bed99fcf8"), Price: 3500, Status: StatusDisplayed, Tags: []string{"熱門"}},
		{SeriesID: "s1", Name: "章魚", Description: "粉紅色的章魚觸手非常可愛。", ImageURL: unsplash("photo-1545671913-b89ac1b4ac10"), Price: 300, Status: StatusStored},
		{SeriesID: "s1", Name: "水母", Description: "透明感的水母造型，夢幻又神祕。", ImageURL: unsplash("photo-1548425550-b37d446bf70a"), Price: 300, Status: StatusDisplayed},
		{SeriesID: "s1", Name: "海龜", Description: "背著小龜殼的慵懶造型。", ImageURL: unsplash("photo-1437622368342-7a3d73a34c8f"), Price: 320, Status: StatusNotOwned, Tags: []string{"重複"}},
		{SeriesID: "s2", Name: "獨角獸", Description: "獨角獸造型，配色非常夢幻。", ImageURL: unsplash("photo-1550684848-fac1c5b4e853"), Price: 800, Status: StatusNotOwned, Tags: []string{"想要"}},
		{SeriesID: "s2", Name: "狼人", Description: "披著狼皮的小可愛。", ImageURL: unsplash("photo-1596796929949-a2128e08d6c7"), Price: 350, Status: StatusDisplayed},
		{SeriesID: "s3", Name: "獅子座", Description: "霸氣十足的獅子座造型。", ImageURL: unsplash("photo-1562569633-622303bafef5"), Price: 600, Status: StatusDisplayed},
		{SeriesID: "s4", Name: "霸王龍", Description: "恐龍霸主！穿著恐龍裝。", ImageURL: unsplash("photo-1614726365318-7f55b95cb325"), Price: 4000, Status: StatusDisplayed, Tags: []string{"隱藏款"}},
		{SeriesID: "s4", Name: "翼龍", Description: "準備起飛的翼龍。", ImageURL: unsplash("photo-1518134701235-985227d894b4"), Price: 320, Status: StatusDisplayed},
		{SeriesID: "s5", Name: "泡泡浴", Description: "正在洗泡泡浴的悠閒時光。", ImageURL: unsplash("photo-1585325701165-351af916e581"), Price: 320, Status: StatusStored},
	}
	items := make([]Item, len(fields))
	for i, f := range fields {
		items[i] = NewItem(f, now)
	}
	return items
}

// Seed returns the full default collection.
func Seed(now time.Time) Snapshot {
	return Snapshot{Series: SeedSeries(), Items: SeedItems(now)}
}
