package service

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

var defaultTestimonials = []domain.Testimonial{
	{
		ID:      1,
		Name:    "Laura Gómez",
		Role:    "Tourist from Bogotá",
		Image:   "https://image.shutterstock.com/image-photo/young-hispanic-girl-holding-colombia-260nw-2139014159.jpg",
		Content: "Visiting the Atlántico department was an incredible experience. The places are beautiful and the people are very friendly. I will definitely be back soon. I was surprised by the variety of activities available, from touring paradise beaches to exploring towns full of history and culture. Every day was a new adventure, and I learned a lot about local traditions.",
	},
	{
		ID:      2,
		Name:    "Pedro Martínez",
		Role:    "International Traveler",
		Image:   "https://definicion.de/wp-content/uploads/2008/05/hombre-1.jpg",
		Content: "The Totumo Volcano was a unique experience. The tour guides are very professional and know the region very well. Additionally, the hospitality of the locals made my visit even more special. I recommend all travelers include Atlántico in their itinerary, as it offers impressive landscapes and delicious cuisine.",
	},
}

type TestimonialService struct {
	items []domain.Testimonial
}

func NewTestimonialService() *TestimonialService {
	return &TestimonialService{items: defaultTestimonials}
}

func (s *TestimonialService) List(ctx context.Context) []domain.Testimonial {
	return append([]domain.Testimonial(nil), s.items...)
}

// At returns the slide at index, wrapping in both directions.
func (s *TestimonialService) At(ctx context.Context, index int) (domain.TestimonialSlide, bool) {
	total := len(s.items)
	if total == 0 {
		return domain.TestimonialSlide{}, false
	}
	i := wrapIndex(index, total)
	return domain.TestimonialSlide{
		Testimonial: s.items[i],
		Index:       i,
		Prev:        wrapIndex(i-1, total),
		Next:        wrapIndex(i+1, total),
		Total:       total,
	}, true
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
