package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notification and form copy keys used by handlers.
const (
	NoticeAddedToCartTitle        = "web.notice.added_to_cart_title"
	NoticeAddedToCartBody         = "web.notice.added_to_cart_body"
	NoticeMovedToCartBody         = "web.notice.moved_to_cart_body"
	NoticeCartUpdatedTitle        = "web.notice.cart_updated_title"
	NoticeCartItemRemovedBody     = "web.notice.cart_item_removed_body"
	NoticeCartClearedTitle        = "web.notice.cart_cleared_title"
	NoticeCartClearedBody         = "web.notice.cart_cleared_body"
	NoticeWishlistAddedTitle      = "web.notice.wishlist_added_title"
	NoticeWishlistAddedBody       = "web.notice.wishlist_added_body"
	NoticeWishlistRemovedTitle    = "web.notice.wishlist_removed_title"
	NoticeWishlistRemovedBody     = "web.notice.wishlist_removed_body"
	NoticeContactSentTitle        = "web.notice.contact_sent_title"
	NoticeContactSentBody         = "web.notice.contact_sent_body"
	NoticeContactFailedTitle      = "web.notice.contact_failed_title"
	NoticeContactFailedBody       = "web.notice.contact_failed_body"
	NoticeAccessDeniedTitle       = "web.notice.access_denied_title"
	NoticeAccessDeniedBody        = "web.notice.access_denied_body"
	NoticeWelcomeBackTitle        = "web.notice.welcome_back_title"
	NoticeWelcomeBackBody         = "web.notice.welcome_back_body"
	NoticeRegisteredTitle         = "web.notice.registered_title"
	NoticeRegisteredBody          = "web.notice.registered_body"
	NoticeSignedOutTitle          = "web.notice.signed_out_title"
	NoticeSignedOutBody           = "web.notice.signed_out_body"
	NoticeRequestFailedTitle      = "web.notice.request_failed_title"
	NoticeRequestFailedBody       = "web.notice.request_failed_body"
	ErrorInvalidOption            = "web.errors.invalid_option"
	ErrorInvalidQuantity          = "web.errors.invalid_quantity"
	ErrorLineNotFound             = "web.errors.line_not_found"
	ErrorWishlistNotFound         = "web.errors.wishlist_not_found"
	ErrorProductNotFound          = "web.errors.product_not_found"
	ErrorInvalidCredentials       = "web.errors.invalid_credentials"
	ErrorEmailTaken               = "web.errors.email_taken"
	ErrorInvalidRegistration      = "web.errors.invalid_registration"
	ErrorInvalidContactSubmission = "web.errors.invalid_contact_submission"
	ErrorInvalidForm              = "web.errors.invalid_form"
	ErrorForbiddenOrigin          = "web.errors.forbidden_origin"
	ErrorUnavailable              = "web.errors.unavailable"
)

func init() {
	lang := language.English

	// Chrome
	message.SetString(lang, "web.brand", "ARVANA")
	message.SetString(lang, "web.meta.description", "ARVANA: premium fashion crafted with ethical production and timeless design.")
	message.SetString(lang, "web.nav.label", "Primary")
	message.SetString(lang, "web.nav.home", "Home")
	message.SetString(lang, "web.nav.shop", "Shop")
	message.SetString(lang, "web.nav.about", "About")
	message.SetString(lang, "web.nav.contact", "Contact")
	message.SetString(lang, "web.nav.admin", "Admin")
	message.SetString(lang, "web.nav.search_placeholder", "Search products...")
	message.SetString(lang, "web.nav.wishlist", "Wishlist")
	message.SetString(lang, "web.nav.cart", "Cart")
	message.SetString(lang, "web.nav.sign_out", "Logout")
	message.SetString(lang, "web.nav.sign_in", "Sign In")
	message.SetString(lang, "web.notifications.dismiss", "Dismiss")
	message.SetString(lang, "web.footer.tagline", "Everyone deserves a share of the success they create.")
	message.SetString(lang, "web.footer.copyright", "© ARVANA. All rights reserved.")

	// Page titles
	message.SetString(lang, "web.title.home", "Premium Fashion")
	message.SetString(lang, "web.title.products", "All Products")
	message.SetString(lang, "web.title.products_subtitle", "Explore our complete collection of premium fashion items")
	message.SetString(lang, "web.title.cart", "Shopping Cart")
	message.SetString(lang, "web.title.wishlist", "My Wishlist")
	message.SetString(lang, "web.title.about", "About Us")
	message.SetString(lang, "web.title.contact", "Contact Us")
	message.SetString(lang, "web.title.login", "Sign In")
	message.SetString(lang, "web.title.register", "Create Account")
	message.SetString(lang, "web.title.admin", "Management Dashboard")

	// Home
	message.SetString(lang, "web.home.eyebrow", "New Season")
	message.SetString(lang, "web.home.hero_title", "Premium Fashion for the Modern You")
	message.SetString(lang, "web.home.hero_copy", "Timeless designs, premium materials and ethical production. Free shipping and easy returns.")
	message.SetString(lang, "web.home.shop_collection", "Shop Collection")
	message.SetString(lang, "web.home.collections_title", "Featured Collections")
	message.SetString(lang, "web.home.collections_copy", "Curated pieces for every occasion.")
	message.SetString(lang, "web.home.collection_count", "%d items")
	message.SetString(lang, "web.home.discover_title", "Discover More Amazing Products")
	message.SetString(lang, "web.home.discover_copy", "Explore our complete collection of premium fashion items.")
	message.SetString(lang, "web.home.discover_action", "View All Products (%d)")

	// Products
	message.SetString(lang, "web.products.all_products", "All Products")
	message.SetString(lang, "web.products.empty_title", "No products found")
	message.SetString(lang, "web.products.empty_copy", "Try adjusting your filters or search terms.")
	message.SetString(lang, "web.products.badge_new", "New")
	message.SetString(lang, "web.products.badge_sale", "Sale")
	message.SetString(lang, "web.products.rating_label", "Rated %.1f out of 5")
	message.SetString(lang, "web.products.reviews", "(%d)")
	message.SetString(lang, "web.products.filter_search", "Search")
	message.SetString(lang, "web.products.filter_category", "Category")
	message.SetString(lang, "web.products.filter_price", "Price Range")
	message.SetString(lang, "web.products.filter_min", "Min")
	message.SetString(lang, "web.products.filter_max", "Max")
	message.SetString(lang, "web.products.sort_label", "Sort by")
	message.SetString(lang, "web.products.apply_filters", "Apply Filters")
	message.SetString(lang, "web.products.clear_filters", "Clear All")
	message.SetString(lang, "web.products.showing", "Showing %d of %d products")
	message.SetString(lang, "web.products.view_label", "Layout")
	message.SetString(lang, "web.products.view_grid", "Grid")
	message.SetString(lang, "web.products.view_list", "List")
	message.SetString(lang, "web.products.sort_featured", "Featured")
	message.SetString(lang, "web.products.sort_price_low", "Price: Low to High")
	message.SetString(lang, "web.products.sort_price_high", "Price: High to Low")
	message.SetString(lang, "web.products.sort_name", "Name")
	message.SetString(lang, "web.products.sort_rating", "Highest Rated")
	message.SetString(lang, "web.products.savings", "You save %s")
	message.SetString(lang, "web.products.size", "Size")
	message.SetString(lang, "web.products.color", "Color")
	message.SetString(lang, "web.products.add_to_cart", "Add to Cart")
	message.SetString(lang, "web.products.related", "You May Also Like")

	// Cart and wishlist
	message.SetString(lang, "web.cart.empty_title", "Your cart is empty")
	message.SetString(lang, "web.cart.empty_copy", "Add some products to get started.")
	message.SetString(lang, "web.cart.continue_shopping", "Continue Shopping")
	message.SetString(lang, "web.cart.item_count", "%d items")
	message.SetString(lang, "web.cart.total", "Total")
	message.SetString(lang, "web.cart.checkout", "Checkout")
	message.SetString(lang, "web.cart.clear", "Clear Cart")
	message.SetString(lang, "web.cart.options", "Size: %s · Color: %s")
	message.SetString(lang, "web.cart.remove", "Remove")
	message.SetString(lang, "web.wishlist.add", "Add to Wishlist")
	message.SetString(lang, "web.wishlist.remove", "Remove from Wishlist")
	message.SetString(lang, "web.wishlist.empty_title", "Your wishlist is empty")
	message.SetString(lang, "web.wishlist.empty_copy", "Save the pieces you love and find them here later.")
	message.SetString(lang, "web.wishlist.move_to_cart", "Move to Cart")

	// Account
	message.SetString(lang, "web.account.sign_in", "Sign In")
	message.SetString(lang, "web.account.create_account", "Create Account")
	message.SetString(lang, "web.account.name", "Full name")
	message.SetString(lang, "web.account.email", "Email address")
	message.SetString(lang, "web.account.password", "Password")
	message.SetString(lang, "web.account.have_account", "Already have an account?")
	message.SetString(lang, "web.account.no_account", "New to ARVANA?")
	message.SetString(lang, "web.account.demo_hint", "Demo account: %s / %s")

	// About
	message.SetString(lang, "web.about.title", "About ARVANA")
	message.SetString(lang, "web.about.intro", "Redefining modern fashion with premium quality, sustainable practices, and timeless designs that empower your personal style.")
	message.SetString(lang, "web.about.stat_customers", "Happy Customers")
	message.SetString(lang, "web.about.stat_products_sold", "Products Sold")
	message.SetString(lang, "web.about.stat_countries", "Countries Served")
	message.SetString(lang, "web.about.stat_years", "Years of Excellence")
	message.SetString(lang, "web.about.story_title", "Our Story")
	message.SetString(lang, "web.about.story_1", "At ARVANA, we envisioned a transformative approach to the textile industry, one that values every individual in the production chain. Our journey began as workers, striving to make a difference in an industry where labor is often undervalued.")
	message.SetString(lang, "web.about.story_2", "Today, ARVANA stands as a testament to the power of collaboration and ethical practices, offering retailers a chance to partner with a manufacturer that prioritizes quality, integrity and mutual growth.")
	message.SetString(lang, "web.about.story_3", "Join us in redefining the textile industry. Partnering with ARVANA means more than sourcing garments. It is about supporting a vision of ethical production and sustainable success.")
	message.SetString(lang, "web.about.values_title", "Our Values")
	message.SetString(lang, "web.about.values_copy", "The principles that guide everything we do and shape our commitment to excellence.")
	message.SetString(lang, "web.about.value_passion_title", "Passion for Fashion")
	message.SetString(lang, "web.about.value_passion_body", "We believe fashion is a form of self-expression that should be accessible to everyone.")
	message.SetString(lang, "web.about.value_quality_title", "Quality First")
	message.SetString(lang, "web.about.value_quality_body", "Every piece is carefully crafted with premium materials and attention to detail.")
	message.SetString(lang, "web.about.value_customer_title", "Customer Focused")
	message.SetString(lang, "web.about.value_customer_body", "Our customers are at the heart of everything we do, driving our innovation and service.")
	message.SetString(lang, "web.about.value_impact_title", "Global Impact")
	message.SetString(lang, "web.about.value_impact_body", "We're committed to sustainable practices and positive impact on communities worldwide.")
	message.SetString(lang, "web.about.team_title", "Meet Our Team")
	message.SetString(lang, "web.about.team_copy", "The passionate individuals behind ARVANA's success and innovation.")
	message.SetString(lang, "web.about.team_ceo", "Founder & CEO")
	message.SetString(lang, "web.about.team_ceo_body", "Visionary leader with 15+ years in fashion industry")
	message.SetString(lang, "web.about.team_creative", "Creative Director")
	message.SetString(lang, "web.about.team_creative_body", "Award-winning designer passionate about sustainable fashion")
	message.SetString(lang, "web.about.team_operations", "Head of Operations")
	message.SetString(lang, "web.about.team_operations_body", "Operations expert ensuring quality and customer satisfaction")
	message.SetString(lang, "web.about.join_title", "Join the ARVANA Community")
	message.SetString(lang, "web.about.join_copy", "Be part of a movement that values quality, sustainability, and authentic style.")

	// Contact
	message.SetString(lang, "web.contact.title", "Get in Touch")
	message.SetString(lang, "web.contact.intro", "Have a question or feedback? We'd love to hear from you. We'll get back to you within 24 hours.")
	message.SetString(lang, "web.contact.email_title", "Email Us")
	message.SetString(lang, "web.contact.email_body", "Send us an email anytime")
	message.SetString(lang, "web.contact.call_title", "Call Us")
	message.SetString(lang, "web.contact.call_body", "Mon-Fri from 8am to 6pm")
	message.SetString(lang, "web.contact.visit_title", "Visit Us")
	message.SetString(lang, "web.contact.visit_body", "Come visit our flagship store")
	message.SetString(lang, "web.contact.hours_title", "Business Hours")
	message.SetString(lang, "web.contact.hours_body", "Weekend: 10am-4pm")
	message.SetString(lang, "web.contact.form_title", "Send us a Message")
	message.SetString(lang, "web.contact.name", "Full name")
	message.SetString(lang, "web.contact.email", "Email address")
	message.SetString(lang, "web.contact.subject", "Subject")
	message.SetString(lang, "web.contact.subject_placeholder", "Select a subject")
	message.SetString(lang, "web.contact.subject_general", "General Inquiry")
	message.SetString(lang, "web.contact.subject_order", "Order Support")
	message.SetString(lang, "web.contact.subject_product", "Product Question")
	message.SetString(lang, "web.contact.subject_returns", "Returns & Exchanges")
	message.SetString(lang, "web.contact.subject_partnership", "Partnership")
	message.SetString(lang, "web.contact.subject_press", "Press & Media")
	message.SetString(lang, "web.contact.message", "Message")
	message.SetString(lang, "web.contact.sending", "Sending...")
	message.SetString(lang, "web.contact.send", "Send Message")
	message.SetString(lang, "web.contact.faq_title", "Frequently Asked Questions")
	message.SetString(lang, "web.contact.faq_copy", "Quick answers to common questions")
	message.SetString(lang, "web.contact.faq_returns_q", "What is your return policy?")
	message.SetString(lang, "web.contact.faq_returns_a", "We offer a 30-day return policy for all unworn items with original tags. Returns are free and easy through our online portal.")
	message.SetString(lang, "web.contact.faq_shipping_q", "How long does shipping take?")
	message.SetString(lang, "web.contact.faq_shipping_a", "Standard shipping takes 3-5 business days. Express shipping (1-2 days) and overnight options are also available.")
	message.SetString(lang, "web.contact.faq_international_q", "Do you ship internationally?")
	message.SetString(lang, "web.contact.faq_international_a", "Yes! We ship to over 25 countries worldwide. International shipping typically takes 7-14 business days.")
	message.SetString(lang, "web.contact.faq_tracking_q", "How do I track my order?")
	message.SetString(lang, "web.contact.faq_tracking_a", "Once your order ships, you'll receive a tracking number by email.")
	message.SetString(lang, "web.contact.still_questions", "Still have questions?")
	message.SetString(lang, "web.contact.still_questions_copy", "Our support team is here to help. Reach out through any channel above.")

	// Admin
	message.SetString(lang, "web.admin.tab_dashboard", "Dashboard")
	message.SetString(lang, "web.admin.tab_products", "Products")
	message.SetString(lang, "web.admin.tab_messages", "Messages")
	message.SetString(lang, "web.admin.total_products", "Total Products")
	message.SetString(lang, "web.admin.total_orders", "Total Orders")
	message.SetString(lang, "web.admin.total_revenue", "Revenue")
	message.SetString(lang, "web.admin.total_customers", "Customers")
	message.SetString(lang, "web.admin.pending_messages", "New Messages")
	message.SetString(lang, "web.admin.number", "%d")
	message.SetString(lang, "web.admin.live_title", "Live Activity")
	message.SetString(lang, "web.admin.live_cart_additions", "Cart additions")
	message.SetString(lang, "web.admin.live_cart_clears", "Carts cleared")
	message.SetString(lang, "web.admin.live_wishlist_adds", "Wishlist saves")
	message.SetString(lang, "web.admin.live_wishlist_moves", "Moved to cart")
	message.SetString(lang, "web.admin.live_sign_ins", "Sign-ins")
	message.SetString(lang, "web.admin.live_sign_outs", "Sign-outs")
	message.SetString(lang, "web.admin.live_registrations", "Registrations")
	message.SetString(lang, "web.admin.live_contact", "Contact messages")
	message.SetString(lang, "web.admin.live_none", "No activity since startup.")
	message.SetString(lang, "web.admin.live_last", "Last event at %s")
	message.SetString(lang, "web.admin.recent_products", "Top Products")
	message.SetString(lang, "web.admin.search_products", "Search products...")
	message.SetString(lang, "web.admin.search", "Search")
	message.SetString(lang, "web.admin.product_count", "%d of %d products")
	message.SetString(lang, "web.admin.col_product", "Product")
	message.SetString(lang, "web.admin.col_category", "Category")
	message.SetString(lang, "web.admin.col_price", "Price")
	message.SetString(lang, "web.admin.col_rating", "Rating")
	message.SetString(lang, "web.admin.messages_title", "Customer Messages")
	message.SetString(lang, "web.admin.unread_count", "%d unread")
	message.SetString(lang, "web.admin.messages_empty", "No messages yet.")
	message.SetString(lang, "web.admin.unread", "New")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Page Not Found")
	message.SetString(lang, "web.error.page_title_server_error", "Something Went Wrong")
	message.SetString(lang, "web.error.title_not_found", "We couldn't find that page")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for may have moved or no longer exists.")
	message.SetString(lang, "web.error.message_server_error", "Please try again in a moment.")
	message.SetString(lang, "web.error.action_back_home", "Back to Home")
	message.SetString(lang, ErrorInvalidOption, "Please choose an available size and color.")
	message.SetString(lang, ErrorInvalidQuantity, "Quantity must be zero or more.")
	message.SetString(lang, ErrorLineNotFound, "That item is no longer in your cart.")
	message.SetString(lang, ErrorWishlistNotFound, "That item is no longer in your wishlist.")
	message.SetString(lang, ErrorProductNotFound, "That product does not exist.")
	message.SetString(lang, ErrorInvalidCredentials, "Invalid email or password.")
	message.SetString(lang, ErrorEmailTaken, "An account with this email already exists.")
	message.SetString(lang, ErrorInvalidRegistration, "Enter your name, a valid email and a password of at least %d characters.")
	message.SetString(lang, ErrorInvalidContactSubmission, "Please fill in every field with a valid email address.")
	message.SetString(lang, ErrorInvalidForm, "The form could not be read.")
	message.SetString(lang, ErrorForbiddenOrigin, "This request did not come from the storefront.")
	message.SetString(lang, ErrorUnavailable, "The service is temporarily unavailable. Please try again.")

	// Notifications
	message.SetString(lang, NoticeAddedToCartTitle, "Added to Cart")
	message.SetString(lang, NoticeAddedToCartBody, "%s has been added to your cart.")
	message.SetString(lang, NoticeMovedToCartBody, "%s has been moved to your cart.")
	message.SetString(lang, NoticeCartUpdatedTitle, "Cart Updated")
	message.SetString(lang, NoticeCartItemRemovedBody, "%s has been removed from your cart.")
	message.SetString(lang, NoticeCartClearedTitle, "Cart Cleared")
	message.SetString(lang, NoticeCartClearedBody, "Your cart is now empty.")
	message.SetString(lang, NoticeWishlistAddedTitle, "Added to Wishlist")
	message.SetString(lang, NoticeWishlistAddedBody, "%s has been saved to your wishlist.")
	message.SetString(lang, NoticeWishlistRemovedTitle, "Removed from Wishlist")
	message.SetString(lang, NoticeWishlistRemovedBody, "Item has been removed from your wishlist.")
	message.SetString(lang, NoticeContactSentTitle, "Message Sent Successfully!")
	message.SetString(lang, NoticeContactSentBody, "Thank you for contacting us. We'll get back to you within 24 hours.")
	message.SetString(lang, NoticeContactFailedTitle, "Message Failed to Send")
	message.SetString(lang, NoticeContactFailedBody, "Please try again or contact us directly at hello@arvana.com")
	message.SetString(lang, NoticeAccessDeniedTitle, "Access Denied")
	message.SetString(lang, NoticeAccessDeniedBody, "Please login to access the admin panel.")
	message.SetString(lang, NoticeWelcomeBackTitle, "Welcome back, %s!")
	message.SetString(lang, NoticeWelcomeBackBody, "You are now signed in.")
	message.SetString(lang, NoticeRegisteredTitle, "Welcome to ARVANA, %s!")
	message.SetString(lang, NoticeRegisteredBody, "Your account has been created.")
	message.SetString(lang, NoticeSignedOutTitle, "Signed Out")
	message.SetString(lang, NoticeSignedOutBody, "See you again soon.")
	message.SetString(lang, NoticeRequestFailedTitle, "Something went wrong")
	message.SetString(lang, NoticeRequestFailedBody, "Your change was not saved. Please try again.")
}
