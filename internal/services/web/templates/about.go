package templates

import (
	"context"

	"github.com/a-h/templ"
)

type aboutStat struct{ value, labelKey string }

type aboutBlock struct{ titleKey, bodyKey string }

type teamMember struct{ name, roleKey, bodyKey, image string }

var aboutStats = []aboutStat{
	{value: "50K+", labelKey: "web.about.stat_customers"},
	{value: "200K+", labelKey: "web.about.stat_products_sold"},
	{value: "25+", labelKey: "web.about.stat_countries"},
	{value: "8+", labelKey: "web.about.stat_years"},
}

var aboutValues = []aboutBlock{
	{titleKey: "web.about.value_passion_title", bodyKey: "web.about.value_passion_body"},
	{titleKey: "web.about.value_quality_title", bodyKey: "web.about.value_quality_body"},
	{titleKey: "web.about.value_customer_title", bodyKey: "web.about.value_customer_body"},
	{titleKey: "web.about.value_impact_title", bodyKey: "web.about.value_impact_body"},
}

var aboutTeam = []teamMember{
	{name: "Sarah Johnson", roleKey: "web.about.team_ceo", bodyKey: "web.about.team_ceo_body", image: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400"},
	{name: "Michael Chen", roleKey: "web.about.team_creative", bodyKey: "web.about.team_creative_body", image: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400"},
	{name: "Emma Rodriguez", roleKey: "web.about.team_operations", bodyKey: "web.about.team_operations_body", image: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400"},
}

// AboutPage renders the brand story.
func AboutPage(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="hero hero-compact"><div class="container"><h1>`)
		h.text(T(loc, "web.about.title"))
		h.raw(`</h1><p class="hero-copy">`)
		h.text(T(loc, "web.about.intro"))
		h.raw("</p></div></section>")

		h.raw(`<section class="container stats-grid">`)
		for _, stat := range aboutStats {
			h.raw(`<div class="stat"><strong>`)
			h.text(stat.value)
			h.raw("</strong><span>")
			h.text(T(loc, stat.labelKey))
			h.raw("</span></div>")
		}
		h.raw("</section>")

		h.raw(`<section class="container story"><h2>`)
		h.text(T(loc, "web.about.story_title"))
		h.raw("</h2>")
		for _, key := range []string{"web.about.story_1", "web.about.story_2", "web.about.story_3"} {
			h.raw("<p>")
			h.text(T(loc, key))
			h.raw("</p>")
		}
		h.raw("</section>")

		h.raw(`<section class="container values"><h2>`)
		h.text(T(loc, "web.about.values_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "web.about.values_copy"))
		h.raw(`</p><div class="card-grid">`)
		for _, value := range aboutValues {
			h.raw(`<div class="card"><h3>`)
			h.text(T(loc, value.titleKey))
			h.raw("</h3><p>")
			h.text(T(loc, value.bodyKey))
			h.raw("</p></div>")
		}
		h.raw("</div></section>")

		h.raw(`<section class="container team"><h2>`)
		h.text(T(loc, "web.about.team_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "web.about.team_copy"))
		h.raw(`</p><div class="card-grid">`)
		for _, member := range aboutTeam {
			h.raw(`<div class="card team-card"><img loading="lazy" width="160" height="160"`)
			h.href("src", member.image)
			h.attr("alt", member.name)
			h.raw("><h3>")
			h.text(member.name)
			h.raw(`</h3><p class="role">`)
			h.text(T(loc, member.roleKey))
			h.raw("</p><p>")
			h.text(T(loc, member.bodyKey))
			h.raw("</p></div>")
		}
		h.raw("</div></section>")

		h.raw(`<section class="cta"><div class="container"><h2>`)
		h.text(T(loc, "web.about.join_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "web.about.join_copy"))
		h.raw(`</p><a class="button" href="/products">`)
		h.text(T(loc, "web.home.shop_collection"))
		h.raw("</a></div></section>")
	})
}
