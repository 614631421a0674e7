package models

// builtinPosts are the posts shipped with the site. They are immutable: the
// post service never edits or deletes them, and user post ids are minted from
// a disjoint range.
var builtinPosts = []Post{
	{
		ID:       1,
		Title:    "My Journey into Machine Learning",
		Date:     "December 15, 2024",
		Category: CategoryML,
		Featured: true,
		Image:    "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=600",
		Gallery:  []string{},
		Excerpt:  "How I started exploring ML and built my first heart disease prediction model...",
		Content: `Machine Learning has always fascinated me since my college days. The idea that computers can learn patterns and make predictions without being explicitly programmed is incredibly powerful.

My journey began during my M.Tech, where I started working on healthcare applications of ML. The challenge of predicting heart disease using patient data became my primary research focus.

**Key learnings from this journey:**
• Data quality matters more than algorithm complexity
• Feature engineering is crucial for model performance
• Ensemble methods often outperform individual models
• Real-world healthcare data is messy and requires careful handling`,
	},
	{
		ID:       2,
		Title:    "Building This Portfolio Website",
		Date:     "December 10, 2024",
		Category: CategoryFrontend,
		Featured: false,
		Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600",
		Gallery:  []string{},
		Excerpt:  "The tech stack and design decisions behind this cyberpunk portfolio...",
		Content: `Building a portfolio website is more than just showcasing your work—it's about creating an experience that reflects your personality and skills.

**Tech Stack:**
• Pure HTML5, CSS3, and Vanilla JavaScript
• No frameworks or external dependencies
• Custom animations and effects

**Design Decisions:**
• Cyberpunk aesthetic with neon colors
• Glassmorphism for depth and modern feel
• Interactive starfield background`,
	},
	{
		ID:       3,
		Title:    "Tips for Frontend Development",
		Date:     "December 5, 2024",
		Category: CategoryFrontend,
		Featured: false,
		Image:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=600",
		Gallery:  []string{},
		Excerpt:  "Essential tips I've learned for creating modern web interfaces...",
		Content: `After working as a Frontend Developer and building multiple projects, here are some tips I've found invaluable:

**1. Master the Fundamentals**
Before jumping into frameworks, truly understand HTML, CSS, and JavaScript.

**2. Write Clean, Semantic Code**
Use proper HTML5 semantic elements for SEO and accessibility.

**3. Performance First**
Optimize images, minimize reflows, use efficient selectors.

**4. Accessibility Matters**
Make websites usable by everyone with proper ARIA labels.`,
	},
}

// BuiltinPosts returns a copy of the built-in post list so callers cannot
// mutate the originals.
func BuiltinPosts() []Post {
	out := make([]Post, len(builtinPosts))
	copy(out, builtinPosts)
	return out
}
