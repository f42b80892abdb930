package server

// serverInstructions returns the system instructions that tell the calling
// model how to pick between the bakery tools.
func serverInstructions() string {
	return `This is a MCP server for Pumpernickel Bakery.
This server is responsible for the following things:
- Translating customer inquiry to order details.
- Managing the order.
- Checking if the order details are complete.
- Providing intelligent product information and recommendations.
- Handling customer queries about products, pricing, and services.
- Providing business information and company details.

**Order Management Tools:**
1. customer_inquiry_to_order_translator: Converts full customer inquiry to structured order details.
2. order_manager: Places the order when customer confirms.
3. order_are_order_details_complete: Checks if all required order details are available. Returns *true* or *false*.
4. receive_order_details: Validates submitted order details and returns the confirmed summary.
5. calculate_order_total: Prices an order including the service charge.

**Product & Company Information Tools:**
6. handle_product_inquiry: Use this for ALL product-related questions including:
   - Product information and descriptions
   - Pricing and size recommendations
   - Allergen information and dietary concerns
   - Product recommendations and suggestions
   - Size estimation for parties and gatherings
   - Cake flavors and options

7. handle_company_inquiry: Use this for ALL business and company-related questions including:
   - Business information and history
   - Operating hours and location
   - Contact information and directions
   - FAQ responses (delivery, payment, custom orders)
   - Ordering process and requirements
   - Delivery and pickup options
   - Payment methods
   - Custom order information

8. get_product_catalog, get_full_menu, search_products, get_product_details,
   get_recommendations: structured catalog lookups when you need raw data
   instead of a written answer.

9. get_business_info, get_contact_options, get_faq, check_allergen_info:
   structured business and customer-service lookups.

10. pounds_to_kilograms, kilograms_to_pounds: cake weight conversion.

11. generate_pickup_reminder, schedule_delivery_with_calendar: fulfillment
    once an order is placed.

**When to Use Which Tool:**
- **Product Questions**: Use handle_product_inquiry for anything about cakes, flavors, prices, sizes, allergens
- **Business Questions**: Use handle_company_inquiry for anything about the company, hours, location, ordering process
- **Order Placement**: Use order management tools when customer is ready to place an order`
}
