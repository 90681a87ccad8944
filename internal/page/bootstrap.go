package page

// bootstrapScript mounts every marked host once the page structure is ready.
// Word colours come from the plan, so the browser side draws nothing at random.
const bootstrapScript = `
document.addEventListener("DOMContentLoaded", function () {
  document.querySelectorAll("[data-dashviz-kind]").forEach(function (el) {
    var kind = el.getAttribute("data-dashviz-kind");
    try {
      var cfg = JSON.parse(el.getAttribute("data-dashviz-config"));
      if (kind === "chart" && typeof Chart !== "undefined") {
        new Chart(el, cfg);
      } else if (kind === "wordcloud" && typeof WordCloud !== "undefined") {
        var colors = Object.create(null);
        cfg.list.forEach(function (item, i) {
          if (colors[item[0]] === undefined) colors[item[0]] = cfg.colors[i];
        });
        WordCloud(el, {
          list: cfg.list,
          gridSize: cfg.gridSize,
          weightFactor: cfg.weightFactor,
          shrinkToFit: cfg.shrinkToFit,
          backgroundColor: cfg.backgroundColor,
          color: function (word) {
            return colors[word] || cfg.palette[0];
          }
        });
      }
    } catch (err) {
      console.error("Error mounting " + kind + ":", err);
    }
  });
});
`
