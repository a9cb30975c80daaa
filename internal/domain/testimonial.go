package domain

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Image   string `json:"image"`
	Content string `json:"content"`
}

type TestimonialSlide struct {
	Testimonial Testimonial `json:"testimonial"`
	Index       int         `json:"index"`
	Prev        int         `json:"prev"`
	Next        int         `json:"next"`
	Total       int         `json:"total"`
}
