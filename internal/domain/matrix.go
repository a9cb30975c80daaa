package domain

type MatrixBucket string

const (
	BucketPreferences MatrixBucket = "preferences"
	BucketRelated     MatrixBucket = "related"
	BucketSuggested   MatrixBucket = "suggested"
	BucketOthers      MatrixBucket = "others"
)

var MatrixBucketOrder = []MatrixBucket{
	BucketPreferences,
	BucketRelated,
	BucketSuggested,
	BucketOthers,
}

var bucketTitles = map[MatrixBucket]string{
	BucketPreferences: "Your Preferences",
	BucketRelated:     "Related Places",
	BucketSuggested:   "You Might Like",
	BucketOthers:      "Other Places",
}

func (b MatrixBucket) Title() string { return bucketTitles[b] }

// DashboardMatrix holds the four dashboard groups. Every destination appears
// in exactly one of them.
type DashboardMatrix struct {
	Preferences []Destination
	Related     []Destination
	Suggested   []Destination
	Others      []Destination
}

func (m DashboardMatrix) Bucket(b MatrixBucket) []Destination {
	switch b {
	case BucketPreferences:
		return m.Preferences
	case BucketRelated:
		return m.Related
	case BucketSuggested:
		return m.Suggested
	case BucketOthers:
		return m.Others
	default:
		return nil
	}
}
